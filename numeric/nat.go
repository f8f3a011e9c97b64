package numeric

import (
	"fmt"
	"math/big"
)

// Nat is the arbitrary-precision implementor of Number: a natural number
// backed by math/big. It exists for the inputs where hyperoperations earn
// their reputation — a three-arrow tower overflows every fixed-width type,
// while Nat keeps growing until memory runs out.
//
// Nat has value semantics despite holding a pointer: no method mutates the
// shared big.Int, every operation allocates a fresh one. The zero value of
// Nat is a usable 0.
type Nat struct {
	v *big.Int
}

var _ Number[Nat] = Nat{}

// natZero backs the zero value of Nat so its methods never dereference nil.
var natZero = new(big.Int)

// ref returns the receiver's backing integer, substituting a shared zero
// for the uninitialized case. Callers must treat the result as read-only.
func (n Nat) ref() *big.Int {
	if n.v == nil {
		return natZero
	}

	return n.v
}

// NatFromUint64 returns the Nat holding u.
func NatFromUint64(u uint64) Nat {
	return Nat{v: new(big.Int).SetUint64(u)}
}

// NatFromString parses a decimal string into a Nat.
// Returns ErrNotNatural for anything that is not an unsigned integer;
// sign prefixes are rejected even when the value would be natural
// ("+5", "-0"), since big.Int.SetString accepts them.
func NatFromString(s string) (Nat, error) {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return Nat{}, fmt.Errorf("%w: %q", ErrNotNatural, s)
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Nat{}, fmt.Errorf("%w: %q", ErrNotNatural, s)
	}

	return Nat{v: v}, nil
}

// Zero returns the Nat 0.
func (Nat) Zero() Nat { return Nat{v: new(big.Int)} }

// One returns the Nat 1.
func (Nat) One() Nat { return Nat{v: big.NewInt(1)} }

// Succ returns n + 1.
func (n Nat) Succ() Nat {
	return Nat{v: new(big.Int).Add(n.ref(), big.NewInt(1))}
}

// Pred returns n - 1. The contract guarantees it is only invoked on values
// of at least two, so the result stays natural.
func (n Nat) Pred() Nat {
	return Nat{v: new(big.Int).Sub(n.ref(), big.NewInt(1))}
}

// IsZero reports whether n == 0.
func (n Nat) IsZero() bool { return n.ref().Sign() == 0 }

// IsOne reports whether n == 1.
func (n Nat) IsOne() bool {
	return n.ref().Cmp(big.NewInt(1)) == 0
}

// Add returns n + other.
func (n Nat) Add(other Nat) Nat {
	return Nat{v: new(big.Int).Add(n.ref(), other.ref())}
}

// Mul returns n * other.
func (n Nat) Mul(other Nat) Nat {
	return Nat{v: new(big.Int).Mul(n.ref(), other.ref())}
}

// BigInt returns a copy of the underlying big.Int, so callers can keep
// computing (Mod, Cmp, …) without aliasing the Nat's state.
func (n Nat) BigInt() *big.Int {
	return new(big.Int).Set(n.ref())
}

// String renders n in decimal. Nat implements fmt.Stringer so that
// expression formatting and plain printing both show the number itself.
func (n Nat) String() string { return n.ref().String() }
