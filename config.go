package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/dnldd/barchart/shared"
	"github.com/joho/godotenv"
)

// Config is the configuration struct for the chart tool.
type Config struct {
	// DataFilePath is the filepath to the candlestick data (csv or json).
	DataFilePath string
	// OutputPath is the filepath the rendered chart is saved to.
	OutputPath string
	// BarSize is the plotted bar size token ("1D", "1Min", "5Min", "15Min").
	BarSize string
	// Title is the chart title.
	Title string
	// Start is the optional inclusive lower date bound (2006-01-02).
	Start string
	// End is the optional inclusive upper date bound (2006-01-02).
	End string
	// VolumePane toggles the traded volume pane on daily charts.
	VolumePane bool

	registeredFlags map[string]bool
}

// Validate asserts the config has sane inputs.
func (cfg *Config) Validate() error {
	var errs error

	if cfg.DataFilePath == "" {
		errs = errors.Join(errs, fmt.Errorf("data filepath cannot be an empty string"))
	}
	if cfg.OutputPath == "" {
		errs = errors.Join(errs, fmt.Errorf("output path cannot be an empty string"))
	}

	if _, err := shared.ParseBarSize(cfg.BarSize); err != nil {
		errs = errors.Join(errs, err)
	}

	for _, bound := range []string{cfg.Start, cfg.End} {
		if bound == "" {
			continue
		}
		if _, err := time.Parse(shared.DayLayout, bound); err != nil {
			errs = errors.Join(errs, fmt.Errorf("parsing date bound %q: %v", bound, err))
		}
	}

	return errs
}

// registerFlag registers command line arguments of any type and tracks them to avoid reregistration.
func (cfg *Config) registerFlag(name string, value interface{}, usage string) error {
	if cfg.registeredFlags == nil {
		cfg.registeredFlags = make(map[string]bool)
	}

	if cfg.registeredFlags[name] {
		return nil
	}

	cfg.registeredFlags[name] = true

	defValue := os.Getenv(name)
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("%s: value must be a non-nil pointer", name)
	}

	switch val.Elem().Kind() {
	case reflect.String:
		flag.StringVar(value.(*string), name, defValue, usage)
	case reflect.Bool:
		var def bool
		if defValue != "" {
			def, _ = strconv.ParseBool(defValue)
		}
		flag.BoolVar(value.(*bool), name, def, usage)
	case reflect.Int:
		var def int
		if defValue != "" {
			def, _ = strconv.Atoi(defValue)
		}
		flag.IntVar(value.(*int), name, def, usage)
	case reflect.Slice:
		// Only handle []string
		if val.Elem().Type().Elem().Kind() == reflect.String {
			var def []string
			if defValue != "" {
				def = strings.Split(defValue, ",")
			}
			flag.Func(name, usage, func(s string) error {
				*value.(*[]string) = strings.Split(s, ",")
				return nil
			})
			// Set default if not provided via flag
			if len(def) > 0 {
				*value.(*[]string) = def
			}
		} else {
			return fmt.Errorf("%s: unsupported slice type", name)
		}
	default:
		return fmt.Errorf("%s: unsupported type", name)
	}

	return nil
}

// loadConfig loads the configuration from environment variables and command line flags.
func loadConfig(cfg *Config, path string) error {
	if path == "" {
		path = ".env"
	}

	// Check if the expected .env file exists before loading it.
	_, err := os.Stat(path)
	if err == nil {
		err := godotenv.Load(path)
		if err != nil {
			return fmt.Errorf("loading .env file: %w", err)
		}
	}

	// Register command line arguments using loaded environment variables as defaults.
	err = cfg.registerFlag("datafilepath", &cfg.DataFilePath, "the candlestick data filepath")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("outputpath", &cfg.OutputPath, "the rendered chart filepath")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("barsize", &cfg.BarSize, "the plotted bar size")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("title", &cfg.Title, "the chart title")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("start", &cfg.Start, "the inclusive lower date bound")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("end", &cfg.End, "the inclusive upper date bound")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("volumepane", &cfg.VolumePane, "the volume pane flag")
	if err != nil {
		return err
	}

	// Parse command-line flags.
	flag.Parse()

	return cfg.Validate()
}
