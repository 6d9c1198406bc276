package strongint

import (
	"cmp"
	"reflect"
	"strconv"
)

// Int is an integer value that behaves arithmetically like its
// representation type N but is nominally distinct from N and from every
// other Int instantiation. Tag is a marker type that is never stored and
// exists only to separate otherwise identical instantiations; V is the
// validation policy consulted before every arithmetic operation.
//
// An Int holds exactly one field of type N, so its memory layout, copy cost
// and comparability are those of the bare representation. Values of the same
// instantiation compare with == and != and are usable as map keys. Values of
// different instantiations do not mix: the compiler rejects any operation
// between them.
//
// Declare a named strong integer with a generic alias:
//
//	type userIDTag struct{}
//	type UserID = strongint.Of[userIDTag, int64]
//
// This type is not thread-safe: mutating the same value from multiple
// goroutines without synchronization is a data race, exactly as it is for a
// shared primitive.
type Int[Tag any, N Native, V Validator[N]] struct {
	value N
}

// Of names an Int instantiation with the default no-op validation policy.
// It is the declaration shorthand for the common case:
//
//	type orderIDTag struct{}
//	type OrderID = strongint.Of[orderIDTag, int64]
type Of[Tag any, N Native] = Int[Tag, N, NoValidation[N]]

// Make constructs a strong integer with the default policy from a raw value,
// running the policy's init hook.
func Make[Tag any, N Native](v N) Of[Tag, N] {
	return MakeValidated[Tag, N, NoValidation[N]](v)
}

// MakeValidated constructs a strong integer with an explicit validation
// policy from a raw value, running the policy's init hook.
func MakeValidated[Tag any, N Native, V Validator[N]](v N) Int[Tag, N, V] {
	var p V
	p.ValidateInit(v)
	return Int[Tag, N, V]{value: v}
}

// Set replaces the held value, running the init hook. Combined with a zero
// declared variable it doubles as a fully inferred constructor:
//
//	var id UserID
//	id.Set(42)
func (x *Int[Tag, N, V]) Set(v N) {
	var p V
	p.ValidateInit(v)
	x.value = v
}

// Value returns the raw representation value.
func (x Int[Tag, N, V]) Value() N {
	return x.value
}

// As returns the raw value converted to another primitive integer type.
func As[K Native, Tag any, N Native, V Validator[N]](x Int[Tag, N, V]) K {
	return K(x.value)
}

// Max returns the largest value representable by the representation type.
func (Int[Tag, N, V]) Max() N {
	return maxOf[N]()
}

// Min returns the smallest value representable by the representation type.
func (Int[Tag, N, V]) Min() N {
	return minOf[N]()
}

// TypeName returns the name of the Tag marker type, which serves as the
// human-readable name of the strong integer type.
func (Int[Tag, N, V]) TypeName() string {
	return reflect.TypeFor[Tag]().Name()
}

// IsZero reports whether the held value is zero.
func (x Int[Tag, N, V]) IsZero() bool {
	return x.value == 0
}

// Neg returns the arithmetic negation after consulting the negate hook.
func (x Int[Tag, N, V]) Neg() Int[Tag, N, V] {
	var p V
	p.ValidateNegate(x.value)
	return Int[Tag, N, V]{value: -x.value}
}

// Not returns the bitwise complement after consulting the bit-not hook.
func (x Int[Tag, N, V]) Not() Int[Tag, N, V] {
	var p V
	p.ValidateBitNot(x.value)
	return Int[Tag, N, V]{value: ^x.value}
}

// Inc increments the value in place by one unit and returns the updated
// value (prefix increment semantics).
func (x *Int[Tag, N, V]) Inc() Int[Tag, N, V] {
	var p V
	p.ValidateAdd(x.value, 1)
	x.value++
	return *x
}

// PostInc increments the value in place by one unit and returns the value
// held before the increment (postfix increment semantics).
func (x *Int[Tag, N, V]) PostInc() Int[Tag, N, V] {
	var p V
	p.ValidateAdd(x.value, 1)
	prev := *x
	x.value++
	return prev
}

// Dec decrements the value in place by one unit and returns the updated
// value (prefix decrement semantics).
func (x *Int[Tag, N, V]) Dec() Int[Tag, N, V] {
	var p V
	p.ValidateSubtract(x.value, 1)
	x.value--
	return *x
}

// PostDec decrements the value in place by one unit and returns the value
// held before the decrement (postfix decrement semantics).
func (x *Int[Tag, N, V]) PostDec() Int[Tag, N, V] {
	var p V
	p.ValidateSubtract(x.value, 1)
	prev := *x
	x.value--
	return prev
}

// Add returns x + y. Both operands must be the identical instantiation;
// scaling by a dimensionless factor is Mul.
func (x Int[Tag, N, V]) Add(y Int[Tag, N, V]) Int[Tag, N, V] {
	var p V
	p.ValidateAdd(x.value, y.value)
	return Int[Tag, N, V]{value: x.value + y.value}
}

// Sub returns x - y.
func (x Int[Tag, N, V]) Sub(y Int[Tag, N, V]) Int[Tag, N, V] {
	var p V
	p.ValidateSubtract(x.value, y.value)
	return Int[Tag, N, V]{value: x.value - y.value}
}

// And returns the bitwise conjunction x & y.
func (x Int[Tag, N, V]) And(y Int[Tag, N, V]) Int[Tag, N, V] {
	var p V
	p.ValidateBitAnd(x.value, y.value)
	return Int[Tag, N, V]{value: x.value & y.value}
}

// Or returns the bitwise disjunction x | y.
func (x Int[Tag, N, V]) Or(y Int[Tag, N, V]) Int[Tag, N, V] {
	var p V
	p.ValidateBitOr(x.value, y.value)
	return Int[Tag, N, V]{value: x.value | y.value}
}

// Xor returns the bitwise exclusive disjunction x ^ y.
func (x Int[Tag, N, V]) Xor(y Int[Tag, N, V]) Int[Tag, N, V] {
	var p V
	p.ValidateBitXor(x.value, y.value)
	return Int[Tag, N, V]{value: x.value ^ y.value}
}

// Shl returns x shifted left by count bits.
func (x Int[Tag, N, V]) Shl(count uint) Int[Tag, N, V] {
	var p V
	p.ValidateLeftShift(x.value, count)
	return Int[Tag, N, V]{value: x.value << count}
}

// Shr returns x shifted right by count bits.
func (x Int[Tag, N, V]) Shr(count uint) Int[Tag, N, V] {
	var p V
	p.ValidateRightShift(x.value, count)
	return Int[Tag, N, V]{value: x.value >> count}
}

// Cmp compares x and y and returns -1, 0 or +1. Comparison never consults
// the validation policy.
func (x Int[Tag, N, V]) Cmp(y Int[Tag, N, V]) int {
	return cmp.Compare(x.value, y.value)
}

// Less reports whether x is ordered before y.
func (x Int[Tag, N, V]) Less(y Int[Tag, N, V]) bool {
	return x.value < y.value
}

// String renders the numeric value in decimal. Byte-width representations
// render as numbers, never as characters.
func (x Int[Tag, N, V]) String() string {
	if x.value < 0 {
		return strconv.FormatInt(int64(x.value), 10)
	}
	return strconv.FormatUint(uint64(x.value), 10)
}
