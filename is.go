package strongint

// StrongInt is implemented by every Int instantiation and by nothing else.
// It can be used as a generic constraint to restrict type parameters to
// strong integer types:
//
//	func dump[T strongint.StrongInt](ids []T) { ... }
type StrongInt interface {
	isStrongInt()
}

func (Int[Tag, N, V]) isStrongInt() {}

// Is reports whether v is a value of some strong integer instantiation.
// It returns false for the bare representation types and for any unrelated
// type.
func Is(v any) bool {
	_, ok := v.(StrongInt)
	return ok
}
