package knuth_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/hyperop/knuth"
	"github.com/katalvlaran/hyperop/numeric"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleHyperoperation
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The canonical small tower: 3 ↑↑ 3 = 3^3^3 = 3^27, the largest tetration
//	of 3 that still fits a machine word.
//
// Use case:
//
//	One-shot evaluation when no notation value is needed.
func ExampleHyperoperation() {
	fmt.Println(knuth.Hyperoperation[numeric.Uint](3, 3, 2))
	// Output:
	// 7625597484987
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleEvaluate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same operations addressed by rank over the full sequence:
//	rank 0 successor, 1 addition, 2 multiplication, 3 exponentiation.
//
// Use case:
//
//	Code that iterates over ranks, or needs successor/addition too.
func ExampleEvaluate() {
	base := numeric.Uint(3)
	for rank := knuth.RankSuccessor; rank <= knuth.RankExponentiation; rank++ {
		fmt.Println(rank, knuth.Evaluate(base, rank, 4))
	}
	// Output:
	// 0 4
	// 1 7
	// 2 12
	// 3 81
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleExpression
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Carry an unevaluated 3 ↑↑ 3 around, print it, then evaluate on demand.
//
// Use case:
//
//	Logging or UI that shows the notation next to the value.
func ExampleExpression() {
	expr := knuth.NewExpression[numeric.Uint](3, 3, 2)
	fmt.Printf("%s = %d\n", expr, expr.Evaluate())
	// Output:
	// 3 ↑↑ 3 = 7625597484987
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleExpression_zeroArrows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Zero arrows degrade to plain multiplication and render with ×.
func ExampleExpression_zeroArrows() {
	expr := knuth.NewExpression[numeric.Uint](4, 7, 0)
	fmt.Printf("%s = %d\n", expr, expr.Evaluate())
	// Output:
	// 4 × 7 = 28
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleHyperoperation_nat
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	5 ↑↑ 3 = 5^3125, a 2185-digit number — far past any fixed-width type,
//	routine for the math/big adapter. Shown modulo 1e8 to keep the output
//	readable.
//
// Use case:
//
//	Exact results for expressions that overflow machine words.
func ExampleHyperoperation_nat() {
	res := knuth.Hyperoperation(numeric.NatFromUint64(5), numeric.NatFromUint64(3), 2)
	fmt.Println(new(big.Int).Mod(res.BigInt(), big.NewInt(100_000_000)))
	// Output:
	// 8203125
}
