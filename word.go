package rc5

import "github.com/codahale/rc5/internal/words"

// Word is the constraint satisfied by the cipher's machine words. Each width owns its pair of magic constants, which
// seed the key schedule.
type Word[W any] interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64

	// P returns Odd((e-2) * 2^w), the first magic constant for the width.
	P() W

	// Q returns Odd((φ-1) * 2^w), the second magic constant for the width.
	Q() W
}

// Word8 is an 8-bit machine word, giving a 16-bit block.
type Word8 uint8

func (Word8) P() Word8 { return 0xb7 }
func (Word8) Q() Word8 { return 0x9f }

// Word16 is a 16-bit machine word, giving a 32-bit block.
type Word16 uint16

func (Word16) P() Word16 { return 0xb7e1 }
func (Word16) Q() Word16 { return 0x9e37 }

// Word32 is a 32-bit machine word, giving a 64-bit block. RC5-32 is the nominal variant of the cipher.
type Word32 uint32

func (Word32) P() Word32 { return 0xb7e15163 }
func (Word32) Q() Word32 { return 0x9e3779b9 }

// Word64 is a 64-bit machine word, giving a 128-bit block.
type Word64 uint64

func (Word64) P() Word64 { return 0xb7e151628aed2a6b }
func (Word64) Q() Word64 { return 0x9e3779b97f4a7c15 }

// Bits returns the width of W in bits.
func Bits[W Word[W]]() int {
	return words.Bits[W]()
}

// Size returns the width of W in bytes.
func Size[W Word[W]]() int {
	return words.Size[W]()
}

// RotateLeft returns x rotated left by n mod Bits[W]() bits.
func RotateLeft[W Word[W]](x, n W) W {
	w := uint(Bits[W]()) //nolint:gosec // always 8, 16, 32, or 64
	k := uint(n) & (w - 1)
	if k == 0 {
		return x
	}
	return x<<k | x>>(w-k)
}

// RotateRight returns x rotated right by n mod Bits[W]() bits.
func RotateRight[W Word[W]](x, n W) W {
	w := uint(Bits[W]()) //nolint:gosec // always 8, 16, 32, or 64
	k := uint(n) & (w - 1)
	if k == 0 {
		return x
	}
	return x>>k | x<<(w-k)
}
