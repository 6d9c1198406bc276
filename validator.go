package strongint

// Validator is the compile-time pluggable validation policy of a strong
// integer type. The policy is selected as a type parameter, so hook dispatch
// is static and a trivial policy adds no runtime cost.
//
// Every hook receives the operand values already unwrapped to the
// representation type. A hook signals an invalid operation by panicking;
// hooks never return errors because no caller inspects a result, the
// operation simply proceeds once the hook returns. This is a deliberate
// fail-fast contract for programmer-error class violations such as overflow,
// not a channel for expected runtime conditions.
//
// The heterogeneous right-hand operand of Multiply, Divide and Modulo is
// reported as int64 regardless of its source type; shift counts are reported
// as uint.
//
// Policies must be stateless struct types: the Int type instantiates the
// policy's zero value on every call.
type Validator[N Native] interface {
	// ValidateInit verifies initialization from v.
	ValidateInit(v N)
	// ValidateNegate verifies -v.
	ValidateNegate(v N)
	// ValidateBitNot verifies ^v.
	ValidateBitNot(v N)
	// ValidateAdd verifies lhs + rhs.
	ValidateAdd(lhs, rhs N)
	// ValidateSubtract verifies lhs - rhs.
	ValidateSubtract(lhs, rhs N)
	// ValidateMultiply verifies lhs * rhs.
	ValidateMultiply(lhs N, rhs int64)
	// ValidateDivide verifies lhs / rhs.
	ValidateDivide(lhs N, rhs int64)
	// ValidateModulo verifies lhs % rhs.
	ValidateModulo(lhs N, rhs int64)
	// ValidateLeftShift verifies lhs << count.
	ValidateLeftShift(lhs N, count uint)
	// ValidateRightShift verifies lhs >> count.
	ValidateRightShift(lhs N, count uint)
	// ValidateBitAnd verifies lhs & rhs.
	ValidateBitAnd(lhs, rhs N)
	// ValidateBitOr verifies lhs | rhs.
	ValidateBitOr(lhs, rhs N)
	// ValidateBitXor verifies lhs ^ rhs.
	ValidateBitXor(lhs, rhs N)
}

// NoValidation is the default policy: every hook is an empty method that the
// compiler inlines away, so a strong integer built on it compiles down to
// operations on the bare representation type.
type NoValidation[N Native] struct{}

func (NoValidation[N]) ValidateInit(N)             {}
func (NoValidation[N]) ValidateNegate(N)           {}
func (NoValidation[N]) ValidateBitNot(N)           {}
func (NoValidation[N]) ValidateAdd(_, _ N)         {}
func (NoValidation[N]) ValidateSubtract(_, _ N)    {}
func (NoValidation[N]) ValidateMultiply(N, int64)  {}
func (NoValidation[N]) ValidateDivide(N, int64)    {}
func (NoValidation[N]) ValidateModulo(N, int64)    {}
func (NoValidation[N]) ValidateLeftShift(N, uint)  {}
func (NoValidation[N]) ValidateRightShift(N, uint) {}
func (NoValidation[N]) ValidateBitAnd(_, _ N)      {}
func (NoValidation[N]) ValidateBitOr(_, _ N)       {}
func (NoValidation[N]) ValidateBitXor(_, _ N)      {}

var _ Validator[int] = NoValidation[int]{}
