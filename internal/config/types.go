// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// LogLevelDebug logs everything, including absorbed input problems.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs warnings and errors.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"

	// ExportJSON exports catalogs as JSON.
	ExportJSON ExportFormat = "json"
	// ExportYAML exports catalogs as YAML.
	ExportYAML ExportFormat = "yaml"
	// ExportTOML exports catalogs as TOML.
	ExportTOML ExportFormat = "toml"
	// ExportCUE exports catalogs as CUE.
	ExportCUE ExportFormat = "cue"

	// DefaultDebounce is the default quiet period before a watched change fires.
	DefaultDebounce = 150 * time.Millisecond
	// DefaultGradientSteps is the default number of samples in a gradient preview.
	DefaultGradientSteps = 16
	// minGradientSteps is the smallest preview that shows both ends.
	minGradientSteps = 2
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidExportFormat is returned when an ExportFormat value is not recognized.
	ErrInvalidExportFormat = errors.New("invalid export format")
	// ErrInvalidDebounce is returned when a debounce value is not a positive duration.
	ErrInvalidDebounce = errors.New("invalid debounce")
	// ErrInvalidGradientSteps is returned when the preview sample count is too small.
	ErrInvalidGradientSteps = errors.New("invalid gradient steps")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level written by the CLI logger.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// ExportFormat is the serialization used by "selcolors export".
	ExportFormat string

	// InvalidExportFormatError is returned when an ExportFormat value is not recognized.
	// It wraps ErrInvalidExportFormat for errors.Is() compatibility.
	InvalidExportFormatError struct {
		Value ExportFormat
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sections.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		UI      UIConfig      `json:"ui" mapstructure:"ui"`
		Log     LogConfig     `json:"log" mapstructure:"log"`
		Watch   WatchConfig   `json:"watch" mapstructure:"watch"`
		Export  ExportConfig  `json:"export" mapstructure:"export"`
		Preview PreviewConfig `json:"preview" mapstructure:"preview"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme selects the palette used for styled output and issue pages.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and full error chains.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Interactive makes "select" prompt for an option when none is given.
		Interactive bool `json:"interactive" mapstructure:"interactive"`
	}

	// LogConfig configures the CLI logger.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// WatchConfig configures "selcolors watch".
	WatchConfig struct {
		// Debounce is a Go duration string.
		Debounce string `json:"debounce" mapstructure:"debounce"`
		// Ignore lists doublestar globs of paths whose changes are ignored.
		Ignore []string `json:"ignore" mapstructure:"ignore"`
	}

	// ExportConfig configures "selcolors export".
	ExportConfig struct {
		Format ExportFormat `json:"format" mapstructure:"format"`
	}

	// PreviewConfig configures catalog rendering.
	PreviewConfig struct {
		// GradientSteps is the number of color chips in a gradient strip.
		GradientSteps int `json:"gradient_steps" mapstructure:"gradient_steps"`
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce.String(),
			Ignore:   []string{},
		},
		Export: ExportConfig{
			Format: ExportJSON,
		},
		Preview: PreviewConfig{
			GradientSteps: DefaultGradientSteps,
		},
	}
}

// IsValid returns whether the Config has valid fields, collecting every
// field-level error.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if _, err := c.Watch.DebounceDuration(); err != nil {
		errs = append(errs, err)
	}
	if valid, fieldErrs := c.Export.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.Preview.GradientSteps < minGradientSteps {
		errs = append(errs, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidGradientSteps, c.Preview.GradientSteps, minGradientSteps))
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig followed by the field errors, so errors.Is()
// matches both the sentinel and each field's own sentinel.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}

// DebounceDuration parses Debounce. The empty value yields DefaultDebounce.
func (c WatchConfig) DebounceDuration() (time.Duration, error) {
	if c.Debounce == "" {
		return DefaultDebounce, nil
	}
	d, err := time.ParseDuration(c.Debounce)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidDebounce, c.Debounce, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w %q: must be positive", ErrInvalidDebounce, c.Debounce)
	}
	return d, nil
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// GlamourStyle returns the glamour style name for the scheme.
func (cs ColorScheme) GlamourStyle() string {
	switch cs {
	case ColorSchemeDark, ColorSchemeLight:
		return string(cs)
	default:
		return "auto"
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels,
// and a list of validation errors if it is not.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Slog maps the level to its slog equivalent. Unknown levels map to Info.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Error implements the error interface for InvalidExportFormatError.
func (e *InvalidExportFormatError) Error() string {
	return fmt.Sprintf("invalid export format %q (valid: json, yaml, toml, cue)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidExportFormatError) Unwrap() error { return ErrInvalidExportFormat }

// String returns the string representation of the ExportFormat.
func (f ExportFormat) String() string { return string(f) }

// IsValid returns whether the ExportFormat is supported,
// and a list of validation errors if it is not.
func (f ExportFormat) IsValid() (bool, []error) {
	switch f {
	case ExportJSON, ExportYAML, ExportTOML, ExportCUE:
		return true, nil
	default:
		return false, []error{&InvalidExportFormatError{Value: f}}
	}
}

// Extension returns the file extension for the format, including the dot.
func (f ExportFormat) Extension() string {
	if f == ExportYAML {
		return ".yaml"
	}
	return "." + string(f)
}
