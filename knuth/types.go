// Package knuth defines ranks, glyphs and the Expression value.
package knuth

import "github.com/katalvlaran/hyperop/numeric"

// Ranks index the full hyperoperation sequence. Each member iterates the one
// below it: rank n applied to (a, b) is a combined with itself b times under
// rank n−1.
const (
	// RankSuccessor is rank 0: a + 1, regardless of count.
	RankSuccessor uint = iota
	// RankAddition is rank 1: a + b.
	RankAddition
	// RankMultiplication is rank 2: a * b. Also the rank of zero Knuth
	// arrows — the arrow surface and the rank surface differ by exactly
	// this offset.
	RankMultiplication
	// RankExponentiation is rank 3 (one arrow): a ↑ b.
	RankExponentiation
	// RankTetration is rank 4 (two arrows): a ↑↑ b, the power tower.
	RankTetration
)

// Glyphs used by Expression rendering.
const (
	// ArrowGlyph is Knuth's up arrow, repeated once per arrow of the
	// expression.
	ArrowGlyph = "↑"
	// TimesGlyph renders the zero-arrow case: with no arrows the operation
	// is plain multiplication, shown as "a × b".
	TimesGlyph = "×"
)

// Expression is an unevaluated hyperoperation in Knuth's notation: Base
// before the arrows, Count after them, and the number of arrows between.
// Zero arrows is multiplication, one is exponentiation, two is tetration,
// and so on (Arrows == rank − 2 in hyperoperation-sequence indexing).
//
// The triple is immutable: to represent a different operation, construct a
// new Expression. Evaluate computes the value, String renders the notation;
// neither touches the fields.
//
// Example:
//
//	expr := NewExpression[numeric.Uint](3, 3, 2) // 3 ↑↑ 3
//	expr.String()   // "3 ↑↑ 3"
//	expr.Evaluate() // 7625597484987
type Expression[T numeric.Number[T]] struct {
	// Base is the operand before the arrows.
	Base T
	// Count is the operand after the arrows: how many times Base is
	// combined with itself one rank down.
	Count T
	// Arrows is the number of arrows in the notation. Counts stay small in
	// practice (results grow hyper-exponentially), so a byte is plenty.
	Arrows uint8
}

// NewExpression constructs the Expression for base {arrows} count.
func NewExpression[T numeric.Number[T]](base, count T, arrows uint8) Expression[T] {
	return Expression[T]{Base: base, Count: count, Arrows: arrows}
}

// Evaluate computes the value of the expression. Shorthand for
// Hyperoperation(e.Base, e.Count, e.Arrows); everything said there about
// growth and overflow applies here.
func (e Expression[T]) Evaluate() T {
	return Hyperoperation(e.Base, e.Count, e.Arrows)
}
