package strongint

// The scaling operations take a bare primitive operand on purpose: scaling a
// quantity by a dimensionless factor is meaningful, while adding a bare
// number to a tagged quantity is not. Addition, subtraction and the bitwise
// pairs therefore exist only between identical instantiations (as methods on
// Int), and multiplication, division and modulo exist only between an Int
// and a primitive. The validation hooks observe the primitive operand as an
// int64.

// Mul returns x scaled by the dimensionless factor k. Multiplication is
// commutative, so there is a single function regardless of operand order.
func Mul[Tag any, N Native, V Validator[N], K Native](x Int[Tag, N, V], k K) Int[Tag, N, V] {
	var p V
	p.ValidateMultiply(x.value, int64(k))
	return Int[Tag, N, V]{value: x.value * N(k)}
}

// Div returns x divided by the dimensionless factor k. Division by zero
// panics with the representation type's native behavior unless the policy
// rejects it first.
func Div[Tag any, N Native, V Validator[N], K Native](x Int[Tag, N, V], k K) Int[Tag, N, V] {
	var p V
	p.ValidateDivide(x.value, int64(k))
	return Int[Tag, N, V]{value: x.value / N(k)}
}

// Mod returns the remainder of x divided by the dimensionless factor k.
func Mod[Tag any, N Native, V Validator[N], K Native](x Int[Tag, N, V], k K) Int[Tag, N, V] {
	var p V
	p.ValidateModulo(x.value, int64(k))
	return Int[Tag, N, V]{value: x.value % N(k)}
}
