package knuth

import (
	"fmt"
	"strings"
)

// String renders the expression in Knuth's up-arrow notation:
// "{base} {glyphs} {count}", where glyphs is the arrow repeated Arrows
// times, or the multiplication sign when there are no arrows.
//
// Formatting is a pure read of the three stored fields — it never
// evaluates, so rendering a tower that could not possibly be computed is
// still instant. Calling it repeatedly on the same value yields the same
// text.
//
// Example:
//
//	NewExpression[numeric.Uint](3, 4, 2).String() // "3 ↑↑ 4"
//	NewExpression[numeric.Uint](4, 7, 0).String() // "4 × 7"
func (e Expression[T]) String() string {
	glyphs := TimesGlyph
	if e.Arrows > 0 {
		glyphs = strings.Repeat(ArrowGlyph, int(e.Arrows))
	}

	return fmt.Sprintf("%v %s %v", e.Base, glyphs, e.Count)
}
