package strongint

// Converter bridges one strong integer type to another. The function value
// is the conversion capability itself: its signature names the exact
// (source, destination) pair, so a pair of types without a converter in
// scope cannot be bridged and the attempt is rejected at compile time.
// A Converter is directional; the reverse direction needs its own converter.
type Converter[Src, Dst StrongInt] func(Src) Dst

// Convert constructs a value of one strong integer type from a value of
// another by applying the supplied converter. This is the only path between
// two distinct strong integer types:
//
//	type bytesTag struct{}
//	type megabytesTag struct{}
//	type Bytes = strongint.Of[bytesTag, int64]
//	type Megabytes = strongint.Of[megabytesTag, int64]
//
//	func megabytesInBytes(mb Megabytes) Bytes {
//		return strongint.Make[bytesTag](mb.Value() << 20)
//	}
//
//	b := strongint.Convert(mb, megabytesInBytes)
func Convert[Src, Dst StrongInt](src Src, conv Converter[Src, Dst]) Dst {
	return conv(src)
}
