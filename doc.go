// Package strongint provides generic, strongly typed integers: values that
// behave arithmetically like a native integer but are nominally distinct
// from the underlying primitive and from every other strong integer type,
// even ones sharing the same representation.
//
// The point is dimensional safety at compile time. A byte count and a
// megabyte count, or a node index and an edge index, can share int64 as
// their representation while remaining mutually incompatible: adding a
// NodeID to an EdgeID, or assigning one to the other, does not compile.
// The distinction lives entirely in the type system; a strong integer is a
// single-field struct with the layout, copy cost and comparability of its
// bare representation.
//
// # Declaring types
//
// A strong integer type is an alias of the generic Int parameterized by a
// private marker type:
//
//	type userIDTag struct{}
//	type UserID = strongint.Of[userIDTag, int64]
//
//	id := strongint.Make[userIDTag](int64(42))
//	next := id.Add(strongint.Make[userIDTag](int64(1)))
//
// Two aliases with different tags are different types, full stop. The tag is
// never instantiated or stored; it only separates the instantiations and
// lends the type its name (see TypeName).
//
// # Arithmetic surface
//
// Same-dimension combination (Add, Sub, And, Or, Xor, the comparisons, and
// the in-place Inc/Dec/PostInc/PostDec) is defined only between values of
// the identical instantiation. Dimensionless scaling (Mul, Div, Mod, Shl,
// Shr) takes a bare primitive operand. The asymmetry is deliberate:
// scaling a quantity preserves its dimension, while adding a bare number to
// a tagged quantity is exactly the bug this package exists to prevent.
//
// # Validation policies
//
// Every operation consults a validation policy before executing. The policy
// is a type parameter, so dispatch is static: with the default NoValidation
// policy every hook is an empty inlinable method and the generated code is
// indistinguishable from arithmetic on the bare primitive. The Checked
// policy panics on overflow, division by zero and out-of-range shifts:
//
//	type offsetTag struct{}
//	type Offset = strongint.Int[offsetTag, int32, strongint.Checked[int32]]
//
// Custom policies implement the Validator interface, usually by embedding
// NoValidation and overriding the hooks they care about. A failing hook must
// panic; no operation returns an error, because a rejected operation is a
// programmer error, not an expected runtime condition.
//
// # Conversions
//
// Distinct strong integer types never convert implicitly. Convert bridges a
// pair through a user-supplied Converter function whose signature carries
// the (source, destination) pair; without such a function in scope the
// conversion does not compile.
//
// # Iteration
//
// Range and UpTo produce iter.Seq sequences over half-open intervals of a
// strong integer type, for use with range-over-func loops.
//
// # Interchange
//
// Values marshal as plain numbers through encoding.TextMarshaler,
// json.Marshaler and yaml.Marshaler, with the inverse directions validating
// syntax and representation range. Byte-width representations render as
// numbers, never as characters. Hash returns an equality-consistent 64-bit
// hash for explicitly hashed containers; ordinary map keys need nothing
// special since values are comparable.
package strongint
