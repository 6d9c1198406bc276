package strongint_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/strongint"
)

type (
	nodeTag  struct{}
	edgeTag  struct{}
	byteTag  struct{}
	mbTag    struct{}
	smallTag struct{}
	wordTag  struct{}
	octetTag struct{}
)

type (
	NodeID    = strongint.Of[nodeTag, int32]
	EdgeID    = strongint.Of[edgeTag, int32]
	Bytes     = strongint.Of[byteTag, int64]
	Megabytes = strongint.Of[mbTag, int64]
	Small     = strongint.Of[smallTag, int8]
	Word      = strongint.Of[wordTag, uint16]
	Octet     = strongint.Of[octetTag, uint8]
)

func TestMake(t *testing.T) {
	t.Parallel()

	t.Run("round trips the raw value", func(t *testing.T) {
		t.Parallel()

		for _, v := range []int32{0, 1, -1, 42, 1<<31 - 1, -1 << 31} {
			assert.Equal(t, v, strongint.Make[nodeTag](v).Value())
		}
	})

	t.Run("zero value equals Make(0)", func(t *testing.T) {
		t.Parallel()

		var id NodeID
		assert.Equal(t, strongint.Make[nodeTag](int32(0)), id)
		assert.True(t, id.IsZero())
	})

	t.Run("set reinitializes in place", func(t *testing.T) {
		t.Parallel()

		var id NodeID
		id.Set(9)
		assert.Equal(t, int32(9), id.Value())
	})
}

func TestTypeIdentity(t *testing.T) {
	t.Parallel()

	t.Run("different tags make distinct types", func(t *testing.T) {
		t.Parallel()

		// Mixing NodeID and EdgeID in any operation does not compile; the
		// closest runtime observation is that the two instantiations are
		// distinct reflect types despite the shared representation.
		assert.NotEqual(t, reflect.TypeOf(NodeID{}), reflect.TypeOf(EdgeID{}))
	})

	t.Run("type name comes from the tag", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "nodeTag", NodeID{}.TypeName())
		assert.Equal(t, "wordTag", Word{}.TypeName())
	})

	t.Run("layout matches the representation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, reflect.TypeOf(int8(0)).Size(), reflect.TypeOf(Small{}).Size())
		assert.Equal(t, reflect.TypeOf(int64(0)).Size(), reflect.TypeOf(Bytes{}).Size())
	})
}

func TestBounds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(127), Small{}.Max())
	assert.Equal(t, int8(-128), Small{}.Min())
	assert.Equal(t, uint16(65535), Word{}.Max())
	assert.Equal(t, uint16(0), Word{}.Min())
	assert.Equal(t, int32(1<<31-1), NodeID{}.Max())
	assert.Equal(t, int32(-1<<31), NodeID{}.Min())
}

func TestUnary(t *testing.T) {
	t.Parallel()

	t.Run("is zero", func(t *testing.T) {
		t.Parallel()

		assert.True(t, strongint.Make[nodeTag](int32(0)).IsZero())
		assert.False(t, strongint.Make[nodeTag](int32(3)).IsZero())
	})

	t.Run("negation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, int32(-5), strongint.Make[nodeTag](int32(5)).Neg().Value())
		assert.Equal(t, int32(5), strongint.Make[nodeTag](int32(-5)).Neg().Value())
	})

	t.Run("complement", func(t *testing.T) {
		t.Parallel()

		w := strongint.Make[wordTag](uint16(0x00FF))
		assert.Equal(t, uint16(0xFF00), w.Not().Value())
	})
}

func TestIncDec(t *testing.T) {
	t.Parallel()

	t.Run("prefix increment mutates and returns the new value", func(t *testing.T) {
		t.Parallel()

		v := strongint.Make[nodeTag](int32(5))
		got := v.Inc()
		assert.Equal(t, int32(6), got.Value())
		assert.Equal(t, int32(6), v.Value())
	})

	t.Run("postfix increment returns the previous value", func(t *testing.T) {
		t.Parallel()

		v := strongint.Make[nodeTag](int32(5))
		got := v.PostInc()
		assert.Equal(t, int32(5), got.Value())
		assert.Equal(t, int32(6), v.Value())
	})

	t.Run("prefix decrement mutates and returns the new value", func(t *testing.T) {
		t.Parallel()

		v := strongint.Make[nodeTag](int32(5))
		got := v.Dec()
		assert.Equal(t, int32(4), got.Value())
		assert.Equal(t, int32(4), v.Value())
	})

	t.Run("postfix decrement returns the previous value", func(t *testing.T) {
		t.Parallel()

		v := strongint.Make[nodeTag](int32(5))
		got := v.PostDec()
		assert.Equal(t, int32(5), got.Value())
		assert.Equal(t, int32(4), v.Value())
	})
}

func TestSameTypeOperations(t *testing.T) {
	t.Parallel()

	samples := []struct{ a, b int32 }{
		{0, 0},
		{1, 2},
		{-7, 3},
		{1 << 20, -(1 << 19)},
		{-1, -1},
	}

	t.Run("arithmetic matches the primitive", func(t *testing.T) {
		t.Parallel()

		for _, s := range samples {
			a := strongint.Make[nodeTag](s.a)
			b := strongint.Make[nodeTag](s.b)
			assert.Equal(t, s.a+s.b, a.Add(b).Value())
			assert.Equal(t, s.a-s.b, a.Sub(b).Value())
		}
	})

	t.Run("bitwise matches the primitive", func(t *testing.T) {
		t.Parallel()

		for _, s := range samples {
			a := strongint.Make[nodeTag](s.a)
			b := strongint.Make[nodeTag](s.b)
			assert.Equal(t, s.a&s.b, a.And(b).Value())
			assert.Equal(t, s.a|s.b, a.Or(b).Value())
			assert.Equal(t, s.a^s.b, a.Xor(b).Value())
		}
	})

	t.Run("operands are immutable", func(t *testing.T) {
		t.Parallel()

		a := strongint.Make[nodeTag](int32(10))
		b := strongint.Make[nodeTag](int32(3))
		_ = a.Add(b)
		assert.Equal(t, int32(10), a.Value())
		assert.Equal(t, int32(3), b.Value())
	})

	t.Run("default policy wraps around", func(t *testing.T) {
		t.Parallel()

		top := strongint.Make[smallTag](int8(127))
		one := strongint.Make[smallTag](int8(1))
		assert.Equal(t, int8(-128), top.Add(one).Value())

		bottom := strongint.Make[smallTag](int8(-128))
		assert.Equal(t, int8(127), bottom.Sub(one).Value())
	})
}

func TestComparisons(t *testing.T) {
	t.Parallel()

	a := strongint.Make[nodeTag](int32(3))
	b := strongint.Make[nodeTag](int32(7))
	c := strongint.Make[nodeTag](int32(3))

	assert.True(t, a == c)
	assert.True(t, a != b)
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(c))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-5", strongint.Make[smallTag](int8(-5)).String())
	assert.Equal(t, "65535", strongint.Make[wordTag](uint16(65535)).String())
	assert.Equal(t, "0", NodeID{}.String())

	// Byte-width values render numerically, never as characters.
	assert.Equal(t, "65", strongint.Make[octetTag](uint8('A')).String())
}

func TestAs(t *testing.T) {
	t.Parallel()

	n := strongint.Make[nodeTag](int32(300))
	assert.Equal(t, int64(300), strongint.As[int64](n))
	assert.Equal(t, uint16(300), strongint.As[uint16](n))

	// Narrowing truncates exactly as the primitive conversion would.
	assert.Equal(t, int8(44), strongint.As[int8](n))
}
