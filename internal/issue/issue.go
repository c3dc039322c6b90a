// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
)

const (
	DocumentNotFoundId Id = iota + 1
	DocumentParseErrorId
	DocumentWriteFailedId
	NoSelectionId
	NoColorsFoundId
	NoLayersFoundId
	OptionOutOfRangeId
	ConfigLoadFailedId
	WatchFailedId
	ExportFailedId
)

type (
	Id int

	MarkdownMsg string

	HttpLink string

	Issue struct {
		id       Id          // ID used to look the issue up
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

var (
	render = glamour.Render

	documentNotFoundIssue = &Issue{
		id: DocumentNotFoundId,
		mdMsg: `
# Document not found!

selcolors reads a document snapshot: a CUE or JSON file holding the layer
tree, the swatch list and the ids of the selected layers.

## Things you can try:
- Check the path you passed on the command line
- Export a snapshot from your design tool and point selcolors at it:
~~~
$ selcolors collect ./board.cue
~~~`,
	}

	documentParseErrorIssue = &Issue{
		id: DocumentParseErrorId,
		mdMsg: `
# Failed to parse the document!

The snapshot does not match the document schema.

## Common mistakes:
- Two layers sharing the same ` + "`id`" + `
- A gradient stop ` + "`position`" + ` outside 0..1
- A misspelled field name (fields are closed: ` + "`colour`" + ` is rejected)

## Minimal document:
~~~cue
selection: ["title"]
layers: [
  {id: "title", type: "Text", style: textColor: "#111111"},
]
~~~`,
	}

	documentWriteFailedIssue = &Issue{
		id: DocumentWriteFailedId,
		mdMsg: `
# Failed to write the document!

The new selection could not be saved back into the snapshot.

## Things you can try:
- Check that the file is writable
- Run without ` + "`--write`" + ` to only print the resolved layers`,
	}

	noSelectionIssue = &Issue{
		id: NoSelectionId,
		mdMsg: `
# Nothing is selected!

The document's ` + "`selection`" + ` list is empty or names layers that no
longer exist.

## Things you can try:
- Add the ids of the layers you want to inspect to ` + "`selection`",
	}

	noColorsFoundIssue = &Issue{
		id: NoColorsFoundId,
		mdMsg: `
# No colors found!

None of the selected layers has an enabled fill, border or text color.

## Things you can try:
- Select a parent group: children are collected too
- Check that the fills you expect are not disabled (` + "`enabled: false`" + `)`,
	}

	noLayersFoundIssue = &Issue{
		id: NoLayersFoundId,
		mdMsg: `
# No layers found!

Every layer that used the picked color has been removed from the document
since the catalog was built.

## Things you can try:
- Run ` + "`selcolors collect`" + ` again to rebuild the catalog`,
	}

	optionOutOfRangeIssue = &Issue{
		id: OptionOutOfRangeId,
		mdMsg: `
# Option out of range!

Options are numbered from 1, solids first and gradients after.

## Things you can try:
- List the available options:
~~~
$ selcolors collect ./board.cue
~~~
- Pick interactively with ` + "`--interactive`",
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Check the file for CUE syntax errors
- Compare it with the defaults:
~~~
$ selcolors config dump
~~~
- Pass another file with ` + "`--config`",
	}

	watchFailedIssue = &Issue{
		id: WatchFailedId,
		mdMsg: `
# Failed to watch the document!

## Things you can try:
- Check that the directory containing the snapshot exists
- Raise the inotify watch limit if you watch many files`,
	}

	exportFailedIssue = &Issue{
		id: ExportFailedId,
		mdMsg: `
# Failed to export the catalog!

## Things you can try:
- Use one of the supported formats: json, yaml, toml, cue
- Check that the output directory exists and is writable`,
	}

	issues = map[Id]*Issue{
		documentNotFoundIssue.Id():    documentNotFoundIssue,
		documentParseErrorIssue.Id():  documentParseErrorIssue,
		documentWriteFailedIssue.Id(): documentWriteFailedIssue,
		noSelectionIssue.Id():         noSelectionIssue,
		noColorsFoundIssue.Id():       noColorsFoundIssue,
		noLayersFoundIssue.Id():       noLayersFoundIssue,
		optionOutOfRangeIssue.Id():    optionOutOfRangeIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
		watchFailedIssue.Id():         watchFailedIssue,
		exportFailedIssue.Id():        exportFailedIssue,
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue page with the glamour style at stylePath
// ("dark", "light", "auto" or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also:\n")
		for _, link := range slices.Concat(i.docLinks, i.extLinks) {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

// Values returns every issue ordered by id.
func Values() []*Issue {
	ids := maps.Keys(issues)
	slices.Sort(ids)
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
