// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"fmt"

	"github.com/selcolors/selcolors/pkg/catalog"

	"github.com/charmbracelet/huh"
)

const defaultPickerTitle = "Select layers by color"

var (
	// ErrCanceled is returned when the user aborts a prompt.
	ErrCanceled = errors.New("selection canceled")
	// ErrNoOptions is returned when there is nothing to pick from.
	ErrNoOptions = errors.New("catalog has no options")
)

// PickOptions configures PickOption.
type PickOptions struct {
	// Title is shown above the options. Empty uses a default.
	Title string
	// Height limits the number of visible rows (0 for auto).
	Height int
	// Config holds common prompt configuration.
	Config Config
}

// PickOption asks the user to choose one catalog option and returns its
// index.
func PickOption(cat *catalog.Catalog, opts PickOptions) (int, error) {
	options := selectOptions(cat)
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	title := opts.Title
	if title == "" {
		title = defaultPickerTitle
	}

	var choice int
	sel := huh.NewSelect[int]().
		Title(title).
		Description(cat.Summary().String()).
		Options(options...).
		Value(&choice)
	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	form := huh.NewForm(huh.NewGroup(sel)).
		WithTheme(huhTheme(opts.Config.Theme)).
		WithAccessible(opts.Config.Accessible).
		WithInput(opts.Config.input()).
		WithOutput(opts.Config.output())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, ErrCanceled
		}
		return 0, fmt.Errorf("run picker: %w", err)
	}
	return choice, nil
}

// selectOptions maps every catalog option to a huh option whose value is
// the option index.
func selectOptions(cat *catalog.Catalog) []huh.Option[int] {
	labels := cat.Labels()
	out := make([]huh.Option[int], 0, len(labels))
	for i, label := range labels {
		out = append(out, huh.NewOption(label, i))
	}
	return out
}
