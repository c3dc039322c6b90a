// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/selcolors/selcolors/internal/issue"
	"github.com/selcolors/selcolors/internal/tui"
	"github.com/selcolors/selcolors/pkg/catalog"

	"github.com/spf13/cobra"
)

type selectFlags struct {
	write bool
}

func newSelectCommand(app *App) *cobra.Command {
	flags := &selectFlags{}

	cmd := &cobra.Command{
		Use:   "select <snapshot> [option]",
		Short: "Select the layers that use a catalog option",
		Long: `Select, in the snapshot, every layer that uses the color or gradient behind
an option number printed by "selcolors collect".

With --interactive and no option, a picker lists the catalog. With --write
the new selection is saved back to the snapshot file.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.report(runSelect(app, flags, args))
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "save the new selection to the snapshot")

	return cmd
}

func runSelect(app *App, flags *selectFlags, args []string) error {
	host, err := openHost(args[0])
	if err != nil {
		return err
	}

	session := catalog.NewSession(host)
	res := session.Recollect()
	if err := requireCatalog(res); err != nil {
		return err
	}

	option, err := app.chooseOption(res.Catalog, args[1:])
	if err != nil {
		return err
	}

	sel := session.Select(option)
	switch sel.Status {
	case catalog.StatusSelected:
	case catalog.StatusOutOfRange:
		svcErr := newServiceError(fmt.Errorf("%s (valid: 0-%d)", sel.Message(), res.Catalog.Len()-1), issue.OptionOutOfRangeId,
			WarningStyle.Render(sel.Message())+"\n")
		svcErr.Code = ExitNoMatch
		return svcErr
	default:
		svcErr := newServiceError(errors.New(sel.Message()), issue.NoLayersFoundId, WarningStyle.Render(sel.Message())+"\n")
		svcErr.Code = ExitNoMatch
		return svcErr
	}

	fmt.Fprintln(app.stdout, SuccessStyle.Render(sel.Message()))
	for _, l := range sel.Layers {
		fmt.Fprintf(app.stdout, "  %s\n", KeyStyle.Render(l.ID.String()))
	}

	if !flags.write {
		return nil
	}
	snap := host.snapshot()
	if err := writeSnapshot(snap); err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Saved selection to %s\n", snap.Path())
	return nil
}

// requireCatalog turns a result without entries into an error.
func requireCatalog(res catalog.Result) error {
	var (
		id  issue.Id
		msg string
	)
	switch res.Status {
	case catalog.StatusReady:
		return nil
	case catalog.StatusNoSelection:
		id, msg = issue.NoSelectionId, "Nothing is selected"
	case catalog.StatusEmpty:
		id, msg = issue.NoColorsFoundId, "No colors found in the selection"
	default:
		id, msg = issue.DocumentNotFoundId, "No active document"
	}

	svcErr := newServiceError(errors.New(msg), id, WarningStyle.Render(msg)+"\n")
	svcErr.Code = ExitNoMatch
	return svcErr
}

// chooseOption parses the option argument, or asks the picker when none is
// given and interactive mode is on.
func (a *App) chooseOption(cat *catalog.Catalog, args []string) (int, error) {
	if len(args) > 0 {
		option, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid option %q: must be an integer", args[0])
		}
		return option, nil
	}

	if !a.flags.interactive {
		return 0, errors.New("no option given (pass an option number or use --interactive)")
	}

	option, err := a.Picker.Pick(cat, tui.PickOptions{
		Title:  "Select the layers using",
		Config: a.promptConfig(),
	})
	if errors.Is(err, tui.ErrCanceled) {
		return 0, newServiceError(err, 0, WarningStyle.Render("Canceled")+"\n")
	}
	return option, err
}
