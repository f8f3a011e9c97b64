// Package hyperop computes and renders hyperoperations — the family of
// operations that generalizes addition, multiplication, exponentiation,
// tetration and beyond, written in Knuth's up-arrow notation.
//
// 🚀 What is hyperop?
//
//	A small, generic library that brings together:
//		• Evaluation: the recursive hyperoperation definition, generic over
//		  any numeric type that satisfies a minimal capability contract
//		• Notation: an immutable Expression value rendered as "3 ↑↑ 3"
//		• Adapters: machine-word Uint (fast, wraps on overflow) and
//		  arbitrary-precision Nat (exact, backed by math/big)
//
// ✨ Why choose hyperop?
//
//   - Beginner-friendly – two entry points, clear, intuitive naming
//   - Generic by contract – bring your own numeric type, fixed or unbounded
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – evaluation is a pure function, safe to call concurrently
//
// Under the hood, everything is organized under two subpackages:
//
//	knuth/   — Evaluate, Hyperoperation and the Expression value
//	numeric/ — the Number[T] capability contract + Uint & Nat adapters
//
// Quick example:
//
//	expr := knuth.NewExpression[numeric.Uint](3, 3, 2) // 3 ↑↑ 3
//	fmt.Println(expr, "=", expr.Evaluate())            // 3 ↑↑ 3 = 7625597484987
//
// Results grow hyper-exponentially: anything past three arrows on a base
// above two overflows every fixed-width type. Reach for numeric.Nat when the
// value itself matters, and for numeric.Uint when speed does.
//
//	go get github.com/katalvlaran/hyperop
package hyperop
