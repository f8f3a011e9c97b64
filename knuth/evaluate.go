package knuth

import "github.com/katalvlaran/hyperop/numeric"

// Evaluate — hyperoperation over the full sequence
//
// Description:
//
//	Evaluate(base, rank, count) applies the rank-th member of the
//	hyperoperation sequence: it combines base with itself count times under
//	the operation one rank down. Rank 0 is the successor function, rank 1
//	addition, rank 2 multiplication, rank 3 exponentiation, rank 4
//	tetration, and so on without bound.
//
// Algorithm Outline:
//  1. rank 0 → base.Succ(), whatever count is (successor takes no
//     repetition parameter by definition).
//  2. rank 1 → base.Add(count).
//  3. rank ≥ 2, count 0 → the identity of the rank below: 0 for
//     multiplication (identity under addition), 1 for everything higher.
//  4. rank ≥ 2, count 1 → base unchanged.
//  5. rank 2 → base.Mul(count): the recursion bottoms out on the numeric
//     type's native multiplication.
//  6. rank ≥ 3, count ≥ 2 → fold one rank down:
//     res = base; repeat count−1 times: res = Evaluate(base, rank−1, res).
//
// The repetition dimension is the loop in step 6, so the call stack only
// grows along the rank dimension — depth is bounded by rank−2, never by
// count. Termination: every recursive call strictly decreases rank, and
// rank is bounded below by 2 inside the loop.
//
// Zero bases need no special casing; their behavior falls out of the
// recursion (Evaluate(0, RankTetration, 2) == 1, since 0⁰ == 1).
//
// Complexity:
//
//	Rank ≤ 2 is O(1) operations of T. Rank 3 is count−1 multiplications;
//	each higher rank iterates the previous one, so cost tracks the
//	astronomically growing result.
//
// Errors:
//
//	None. Overflow, wraparound or allocation growth on extreme inputs is
//	entirely the supplied numeric type's behavior: Uint wraps, Nat grows
//	until memory runs out. Choose T accordingly.
func Evaluate[T numeric.Number[T]](base T, rank uint, count T) T {
	switch {
	case rank == RankSuccessor:
		return base.Succ()
	case rank == RankAddition:
		return base.Add(count)
	case count.IsZero():
		if rank == RankMultiplication {
			return base.Zero()
		}

		return base.One()
	case count.IsOne():
		return base
	case rank == RankMultiplication:
		return base.Mul(count)
	default:
		// res starts as one application of base; each turn of the loop
		// wraps it in one more layer of the next-lower operation.
		res := base
		for n := count; !n.IsOne(); n = n.Pred() {
			res = Evaluate(base, rank-1, res)
		}

		return res
	}
}

// Hyperoperation computes base {arrows} count in Knuth's up-arrow notation:
// zero arrows is multiplication, one arrow exponentiation, two arrows
// tetration. It is Evaluate at rank arrows+2 — the notation simply starts
// counting at multiplication.
//
// Example:
//
//	Hyperoperation[numeric.Uint](3, 3, 2) // 3 ↑↑ 3 = 7625597484987
//
// Equivalent to NewExpression(base, count, arrows).Evaluate().
func Hyperoperation[T numeric.Number[T]](base, count T, arrows uint8) T {
	return Evaluate(base, uint(arrows)+RankMultiplication, count)
}
