package strongint

import (
	"fmt"
	"math"
	"math/bits"
)

// Checked is a validation policy that panics whenever an operation would
// leave the representable range of N instead of silently wrapping. Use it
// for quantities where wraparound is always a bug:
//
//	type quotaTag struct{}
//	type Quota = strongint.Int[quotaTag, int32, strongint.Checked[int32]]
//
// The policy treats a negative scale factor applied to an unsigned
// representation as out of range, and rejects shift counts that reach the
// width of the representation as well as left shifts that discard bits.
type Checked[N Native] struct{}

func (Checked[N]) ValidateInit(N) {}

func (Checked[N]) ValidateNegate(v N) {
	if isUnsigned[N]() {
		if v != 0 {
			panic(fmt.Sprintf("strongint: negating unsigned value %d", v))
		}
		return
	}
	if v == minOf[N]() {
		panic(fmt.Sprintf("strongint: negating %d overflows the representation", v))
	}
}

func (Checked[N]) ValidateBitNot(N) {}

func (Checked[N]) ValidateAdd(lhs, rhs N) {
	sum := lhs + rhs
	if (rhs > 0 && sum < lhs) || (rhs < 0 && sum > lhs) {
		panic(fmt.Sprintf("strongint: %d + %d overflows the representation", lhs, rhs))
	}
}

func (Checked[N]) ValidateSubtract(lhs, rhs N) {
	diff := lhs - rhs
	if (rhs > 0 && diff > lhs) || (rhs < 0 && diff < lhs) {
		panic(fmt.Sprintf("strongint: %d - %d overflows the representation", lhs, rhs))
	}
}

func (Checked[N]) ValidateMultiply(lhs N, rhs int64) {
	if lhs == 0 || rhs == 0 {
		return
	}
	if isUnsigned[N]() {
		if rhs < 0 {
			panic(fmt.Sprintf("strongint: %d * %d is negative for an unsigned representation", lhs, rhs))
		}
		hi, lo := bits.Mul64(uint64(lhs), uint64(rhs))
		if hi != 0 || lo > uint64(maxOf[N]()) {
			panic(fmt.Sprintf("strongint: %d * %d overflows the representation", lhs, rhs))
		}
		return
	}
	l := int64(lhs)
	if l == math.MinInt64 && rhs == -1 {
		panic(fmt.Sprintf("strongint: %d * %d overflows the representation", lhs, rhs))
	}
	p := l * rhs
	if p/rhs != l || p > int64(maxOf[N]()) || p < int64(minOf[N]()) {
		panic(fmt.Sprintf("strongint: %d * %d overflows the representation", lhs, rhs))
	}
}

func (Checked[N]) ValidateDivide(lhs N, rhs int64) {
	if rhs == 0 {
		panic(fmt.Sprintf("strongint: %d / 0", lhs))
	}
	if isUnsigned[N]() {
		if rhs < 0 {
			panic(fmt.Sprintf("strongint: dividing unsigned %d by negative %d", lhs, rhs))
		}
		return
	}
	if rhs == -1 && int64(lhs) == int64(minOf[N]()) {
		panic(fmt.Sprintf("strongint: %d / -1 overflows the representation", lhs))
	}
}

func (Checked[N]) ValidateModulo(lhs N, rhs int64) {
	if rhs == 0 {
		panic(fmt.Sprintf("strongint: %d %% 0", lhs))
	}
}

func (Checked[N]) ValidateLeftShift(lhs N, count uint) {
	if count >= bitsOf[N]() {
		panic(fmt.Sprintf("strongint: shift count %d exceeds %d-bit representation", count, bitsOf[N]()))
	}
	if lhs != 0 && (lhs<<count)>>count != lhs {
		panic(fmt.Sprintf("strongint: %d << %d discards bits", lhs, count))
	}
}

func (Checked[N]) ValidateRightShift(lhs N, count uint) {
	if count >= bitsOf[N]() {
		panic(fmt.Sprintf("strongint: shift count %d exceeds %d-bit representation", count, bitsOf[N]()))
	}
}

func (Checked[N]) ValidateBitAnd(_, _ N) {}
func (Checked[N]) ValidateBitOr(_, _ N)  {}
func (Checked[N]) ValidateBitXor(_, _ N) {}

var _ Validator[int] = Checked[int]{}
