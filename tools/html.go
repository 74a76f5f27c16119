package tools

import (
	"fmt"
	"io"
	"sort"

	"github.com/atmoschem/mex/mech"

	md "github.com/russross/blackfriday/v2"
)

// RenderMechanismHTML writes the body of a mechanism report: the
// reactions, the species groups, and the declared net reactions.
func RenderMechanismHTML(m *mech.Mechanism, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	if m.Def.Comment != "" {
		f(`<div class="mechDoc doc">%s</div>`, md.Run([]byte(m.Def.Comment)))
	}

	{ // Reactions
		f(`<div class="reactions"><table>`)
		for _, name := range m.ReactionNames() {
			f(`<tr class="reaction"><td><span id="%s" class="reactionName">%s</span></td>`, name, name)
			f(`<td><code>%s</code></td></tr>`, m.Reactions[name])
		}
		f(`</table></div>`)
	}

	{ // Species groups
		f(`<div class="groups"><table>`)
		for _, def := range m.Def.SpeciesGroupList {
			f(`<tr class="group"><td><code>%s</code></td></tr>`, def)
		}
		f(`</table></div>`)
	}

	if 0 < len(m.NetReactionDefs) {
		f(`<div class="netReactions"><table>`)
		for _, name := range sortedDefs(m.NetReactionDefs) {
			rxn, err := m.NetReaction(name)
			if err != nil {
				return err
			}
			f(`<tr class="netReaction"><td><span class="reactionName">%s</span></td>`, name)
			f(`<td><code>%s</code></td></tr>`, rxn)
		}
		f(`</table></div>`)
	}

	return nil
}

// RenderMechanismPage writes a complete HTML page for the mechanism.
func RenderMechanismPage(m *mech.Mechanism, out io.Writer, cssFiles []string) error {
	if cssFiles == nil {
		cssFiles = []string{"/static/mech-html.css"}
	}

	title := m.Def.Name
	if title == "" {
		title = "mechanism"
	}

	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>%s</title>
`, title)

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", cssFile)
	}

	fmt.Fprintf(out, `
  </head>
  <body>
    <h1>%s</h1>
`, title)

	if err := RenderMechanismHTML(m, out); err != nil {
		return err
	}

	fmt.Fprintf(out, `
  </body>
</html>
`)

	return nil
}

// ReadAndRenderMechanismPage loads a mechanism definition from a
// YAML file and renders its page.
func ReadAndRenderMechanismPage(filename string, cssFiles []string, out io.Writer) error {
	def, err := mech.LoadDefinition(filename)
	if err != nil {
		return err
	}
	m, err := mech.New(def, nil)
	if err != nil {
		return err
	}
	return RenderMechanismPage(m, out, cssFiles)
}

func sortedDefs(defs map[string]string) []string {
	acc := make([]string, 0, len(defs))
	for name := range defs {
		acc = append(acc, name)
	}
	sort.Strings(acc)
	return acc
}
