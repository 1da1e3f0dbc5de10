package pattern

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders p as an indented tree, for tracing and debugging.
func Dump(p Pattern) string {
	printer := tp.New()
	dumpNode(printer, "", p)
	return printer.String()
}

func dumpNode(printer tp.Tree, label string, p Pattern) {
	switch pat := p.(type) {
	case *sequence:
		branch := printer.AddBranch(label + fmt.Sprintf("sequence(len=%d)", len(pat.items)))
		for i, item := range pat.items {
			dumpNode(branch, fmt.Sprintf("%d: ", i), item)
		}
	case *record:
		branch := printer.AddBranch(label + "record")
		for _, f := range pat.fields {
			dumpNode(branch, f.key+": ", f.pat)
		}
	default:
		printer.AddNode(label + str(p))
	}
}
