package numeric

// Uint is the machine-word implementor of Number: a plain uint64 with the
// contract methods on top. It is allocation-free and as fast as native
// arithmetic, and on overflow it wraps silently, exactly as the underlying
// Go integer does — picking Uint is picking that failure mode. Use Nat when
// the result must be exact regardless of magnitude.
type Uint uint64

var _ Number[Uint] = Uint(0)

// Zero returns 0.
func (Uint) Zero() Uint { return 0 }

// One returns 1.
func (Uint) One() Uint { return 1 }

// Succ returns u + 1.
func (u Uint) Succ() Uint { return u + 1 }

// Pred returns u - 1. At zero it wraps, like any Go unsigned integer.
func (u Uint) Pred() Uint { return u - 1 }

// IsZero reports whether u == 0.
func (u Uint) IsZero() bool { return u == 0 }

// IsOne reports whether u == 1.
func (u Uint) IsOne() bool { return u == 1 }

// Add returns u + other.
func (u Uint) Add(other Uint) Uint { return u + other }

// Mul returns u * other.
func (u Uint) Mul(other Uint) Uint { return u * other }
