package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// volumePaneRatio is the share of figure height given to the volume pane.
const volumePaneRatio = 0.2

// Figure represents a rendered chart, optionally carrying a traded volume
// pane below the price pane.
type Figure struct {
	price  *plot.Plot
	volume *plot.Plot
	width  vg.Length
	height vg.Length
}

// WriteTo renders the figure in the provided image format ("png", "svg",
// "pdf", ...) and writes it to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	c, err := draw.NewFormattedCanvas(f.width, f.height, format)
	if err != nil {
		return 0, fmt.Errorf("creating %q canvas: %w", format, err)
	}

	dc := draw.New(c)
	switch f.volume {
	case nil:
		f.price.Draw(dc)
	default:
		height := dc.Max.Y - dc.Min.Y
		paneHeight := height * volumePaneRatio
		f.price.Draw(draw.Crop(dc, 0, 0, paneHeight, 0))
		f.volume.Draw(draw.Crop(dc, 0, 0, 0, paneHeight-height))
	}

	n, err := c.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("writing %q figure: %w", format, err)
	}

	return n, nil
}

// Save renders the figure to the provided path, with the image format
// inferred from the file extension.
func (f *Figure) Save(path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("no image format extension on path %q", path)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating figure file: %w", err)
	}

	_, err = f.WriteTo(out, format)

	return errors.Join(err, out.Close())
}
