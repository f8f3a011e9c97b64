package knuth_test

import (
	"testing"

	"github.com/katalvlaran/hyperop/knuth"
	"github.com/katalvlaran/hyperop/numeric"
)

// benchmarkUint is a helper that evaluates base {arrows} count on the
// machine-word adapter in a loop, keeping the result alive so the call is
// not elided.
func benchmarkUint(b *testing.B, base, count numeric.Uint, arrows uint8) {
	var sink numeric.Uint
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = knuth.Hyperoperation(base, count, arrows)
	}
	_ = sink
}

// BenchmarkHyperoperation_Multiply benchmarks the zero-arrow bottom-out
// (a single native multiplication).
func BenchmarkHyperoperation_Multiply(b *testing.B) {
	benchmarkUint(b, 4, 7, 0)
}

// BenchmarkHyperoperation_Power benchmarks one arrow: 2 ↑ 30, i.e. 29
// iterated multiplications.
func BenchmarkHyperoperation_Power(b *testing.B) {
	benchmarkUint(b, 2, 30, 1)
}

// BenchmarkHyperoperation_Tower33 benchmarks the canonical 3 ↑↑ 3 tower.
func BenchmarkHyperoperation_Tower33(b *testing.B) {
	benchmarkUint(b, 3, 3, 2)
}

// BenchmarkHyperoperation_Tower24 benchmarks 2 ↑↑ 4 = 65536.
func BenchmarkHyperoperation_Tower24(b *testing.B) {
	benchmarkUint(b, 2, 4, 2)
}

// BenchmarkHyperoperation_NatTower benchmarks 5 ↑↑ 3 = 5^3125 on the
// arbitrary-precision adapter, where the cost is big.Int multiplication.
func BenchmarkHyperoperation_NatTower(b *testing.B) {
	five := numeric.NatFromUint64(5)
	three := numeric.NatFromUint64(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = knuth.Hyperoperation(five, three, 2)
	}
}
