package tables

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// styleOverrides reports whether an inline style attribute requests an
// explicit table width under the given match mode.
func styleOverrides(style string, mode OverrideMatch) bool {
	if mode == MatchDeclaration {
		return declaresWidth(style)
	}
	return strings.Contains(style, "width")
}

// declaresWidth tokenizes style as an inline declaration list and looks for a
// width property.
func declaresWidth(style string) bool {
	p := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return false
		case css.DeclarationGrammar:
			if strings.EqualFold(string(data), "width") {
				return true
			}
		}
	}
}
