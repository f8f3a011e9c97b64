package numeric

// Number is the capability contract for hyperoperation operands.
//
// A type T satisfies Number[T] when it can report itself as zero or one,
// produce its own zero, one, successor and predecessor, and combine with
// another T by addition and multiplication. That is the entire surface the
// evaluator touches: addition and multiplication are where the rank
// recursion bottoms out, Succ covers rank 0, and Pred drives the repetition
// countdown. Nothing else — no subtraction, no division, no ordering — is
// ever required.
//
// Every method must be pure: return a new value, leave the receiver
// untouched. The evaluator reuses its operands freely and relies on that.
//
// Fields of the contract map one-to-one onto the shipped implementors; see
// Uint and Nat for reference method sets.
type Number[T any] interface {
	// Zero returns the additive identity of T.
	Zero() T
	// One returns the multiplicative identity of T.
	One() T
	// Succ returns the receiver incremented by one.
	Succ() T
	// Pred returns the receiver decremented by one. The evaluator only
	// calls it on values it has already checked to be at least two.
	Pred() T
	// IsZero reports whether the receiver equals zero.
	IsZero() bool
	// IsOne reports whether the receiver equals one.
	IsOne() bool
	// Add returns receiver + other.
	Add(other T) T
	// Mul returns receiver * other.
	Mul(other T) T
}
