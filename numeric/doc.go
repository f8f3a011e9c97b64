// Package numeric defines the capability contract a value type must satisfy
// to be used as a hyperoperation operand, plus two ready-made adapters.
//
// 🚀 What is the contract?
//
//	Number[T] is the minimal method set the evaluator needs:
//	  • Zero / One          — identity constants
//	  • Succ / Pred         — step by one in either direction
//	  • IsZero / IsOne      — the only comparisons required
//	  • Add / Mul           — the combinators the recursion bottoms out on
//
//	Deliberately absent: general subtraction, division, ordering. The
//	evaluator never needs them, so your type never has to provide them.
//
// ✨ Shipped implementors:
//
//   - Uint — a machine word. Fast, allocation-free; on overflow it wraps
//     exactly like the underlying Go integer. Choosing it is choosing that
//     behavior.
//   - Nat  — an arbitrary-precision natural number over math/big. Exact for
//     any result that fits in memory; every operation returns a fresh value
//     and never mutates its receiver.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hyperop/numeric"
//
//	n := numeric.NatFromUint64(5)
//	fmt.Println(n.Mul(n.Succ())) // 30
//
// All operations on both adapters are pure value semantics: no aliasing, no
// in-place mutation, safe for concurrent use.
package numeric
