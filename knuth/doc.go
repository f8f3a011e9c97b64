// Package knuth evaluates hyperoperations and renders them in Knuth's
// up-arrow notation.
//
// 🚀 What is a hyperoperation?
//
//	The sequence of operations where each member iterates the previous one:
//	successor, addition, multiplication, exponentiation, tetration, … The
//	package exposes two views of it:
//	  • Evaluate           — indexed by rank over the full sequence
//	                         (0 = successor, 1 = addition, 2 = multiplication, …)
//	  • Hyperoperation     — indexed by arrow count, Knuth-style
//	                         (0 arrows = ×, 1 = ↑, 2 = ↑↑, …), so that
//	                         arrows == rank − 2
//	  • Expression         — an immutable (Base, Count, Arrows) triple that
//	                         evaluates on demand and prints as "3 ↑↑ 3"
//
// ✨ Key features:
//   - generic over any numeric.Number implementor (fixed-width or big)
//   - the repetition dimension is a plain loop: call-stack depth is bounded
//     by the rank, never by the count
//   - formatting reads the stored fields only — no evaluation, ever
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/hyperop/knuth"
//	  "github.com/katalvlaran/hyperop/numeric"
//	)
//
//	knuth.Hyperoperation[numeric.Uint](3, 3, 2) // 3 ↑↑ 3 = 7625597484987
//
//	expr := knuth.NewExpression[numeric.Uint](3, 3, 2)
//	fmt.Printf("%s = %d\n", expr, expr.Evaluate())
//
// Performance:
//
//   - Rank ≤ 2 is a single native operation of the numeric type.
//   - Rank 3 performs count−1 multiplications; every rank above nests one
//     more iterated layer, so running time explodes together with the
//     result. That is the mathematics, not the implementation.
//
// Evaluation is a pure function with no shared state; concurrent calls with
// independent inputs need no synchronization.
package knuth
