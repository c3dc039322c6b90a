// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

const (
	// ThemeDefault uses the base huh theme.
	ThemeDefault Theme = "default"
	// ThemeCharm uses the Charm theme.
	ThemeCharm Theme = "charm"
	// ThemeDracula uses the Dracula theme.
	ThemeDracula Theme = "dracula"
	// ThemeCatppuccin uses the Catppuccin theme.
	ThemeCatppuccin Theme = "catppuccin"
	// ThemeBase16 uses the Base16 theme.
	ThemeBase16 Theme = "base16"
)

// ErrInvalidTheme is the sentinel error wrapped by InvalidThemeError.
var ErrInvalidTheme = errors.New("invalid theme")

type (
	// Theme represents the visual theme for prompts.
	Theme string

	// InvalidThemeError is returned when a Theme value is not recognized.
	// It wraps ErrInvalidTheme for errors.Is() compatibility.
	InvalidThemeError struct {
		Value Theme
	}

	// Config holds common configuration for prompts.
	Config struct {
		// Theme specifies the visual theme to use.
		Theme Theme
		// Accessible replaces the full-screen prompt with line-based input.
		Accessible bool
		// Input is where prompts read from. nil means os.Stdin.
		Input io.Reader
		// Output is where prompts are drawn. nil means os.Stderr, so that a
		// prompt is never captured by command substitution.
		Output io.Writer
	}
)

// DefaultConfig returns the default prompt configuration. Accessible mode is
// enabled when stdin is not a terminal or ACCESSIBLE is set.
func DefaultConfig() Config {
	return Config{
		Theme:      ThemeDefault,
		Accessible: !isInputTerminal() || os.Getenv("ACCESSIBLE") != "",
	}
}

// String returns the string representation of the Theme.
func (t Theme) String() string { return string(t) }

// IsValid returns whether the Theme is one of the defined themes,
// and a list of validation errors if it is not.
func (t Theme) IsValid() (bool, []error) {
	switch t {
	case ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16:
		return true, nil
	default:
		return false, []error{&InvalidThemeError{Value: t}}
	}
}

// Error implements the error interface for InvalidThemeError.
func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme %q (valid: default, charm, dracula, catppuccin, base16)", e.Value)
}

// Unwrap returns ErrInvalidTheme for errors.Is() compatibility.
func (e *InvalidThemeError) Unwrap() error { return ErrInvalidTheme }

// isInputTerminal returns true if stdin is connected to a terminal.
func isInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (c Config) input() io.Reader {
	if c.Input != nil {
		return c.Input
	}
	return os.Stdin
}

func (c Config) output() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stderr
}

// huhTheme converts a Theme to a huh.Theme.
func huhTheme(t Theme) *huh.Theme {
	switch t {
	case ThemeCharm:
		return huh.ThemeCharm()
	case ThemeDracula:
		return huh.ThemeDracula()
	case ThemeCatppuccin:
		return huh.ThemeCatppuccin()
	case ThemeBase16:
		return huh.ThemeBase16()
	default:
		return huh.ThemeBase()
	}
}
