// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/selcolors/selcolors/pkg/catalog"

	"github.com/spf13/cobra"
)

func newCollectCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "collect <snapshot>",
		Short: "List the colors and gradients of the selected layers",
		Long: `List every distinct solid color and gradient used by the selected layers
and their descendants, with the number of layers using each one.

Swatch-linked colors come first, then colors and gradients ordered by how
many layers use them. The number in front of each row is the option
accepted by "selcolors select".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := openHost(args[0])
			if err != nil {
				return app.report(err)
			}
			res := catalog.NewSession(host).Recollect()
			app.printResult(app.stdout, args[0], res)
			return nil
		},
	}
}

// printResult writes a collection result: a status line for anything but a
// ready catalog, otherwise a summary followed by the catalog rows.
func (a *App) printResult(w io.Writer, source string, res catalog.Result) {
	switch res.Status {
	case catalog.StatusNoDocument:
		fmt.Fprintln(w, WarningStyle.Render("No active document"))
	case catalog.StatusNoSelection:
		fmt.Fprintln(w, WarningStyle.Render("Nothing is selected"))
	case catalog.StatusEmpty:
		fmt.Fprintln(w, WarningStyle.Render("No colors found in the selection"))
	case catalog.StatusReady:
		fmt.Fprintln(w, TitleStyle.Render(source)+SubtitleStyle.Render(" · "+res.Catalog.Summary().String()))
		fmt.Fprintln(w)
		fmt.Fprint(w, a.renderer().Catalog(res.Catalog))
	}
}
