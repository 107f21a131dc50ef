// Package words packs fixed-width unsigned words into and out of byte slices.
package words

import (
	"math/bits"
	"unsafe"
)

// Unsigned is the set of machine word types supported by the cipher.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of W in bits.
func Bits[W Unsigned]() int {
	return bits.OnesCount64(uint64(^W(0)))
}

// Size returns the width of W in bytes.
func Size[W Unsigned]() int {
	return Bits[W]() / 8
}

// Load reads a little-endian W from the first Size[W]() bytes of b.
func Load[W Unsigned](b []byte) W {
	n := Size[W]()
	_ = b[n-1] // bounds check hint to compiler

	var w W
	for i := range n {
		w |= W(b[i]) << (8 * uint(i)) //nolint:gosec // i is always [0,8)
	}
	return w
}

// Store writes w to the first Size[W]() bytes of b in little-endian order.
func Store[W Unsigned](b []byte, w W) {
	n := Size[W]()
	_ = b[n-1] // bounds check hint to compiler

	for i := range n {
		b[i] = byte(w >> (8 * uint(i))) //nolint:gosec // i is always [0,8)
	}
}

// AnyOverlap reports whether x and y share memory at any (not necessarily corresponding) index.
func AnyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// InexactOverlap reports whether x and y share memory at any non-corresponding index. In-place operations, where x
// and y start at the same address, are allowed.
func InexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return AnyOverlap(x, y)
}
