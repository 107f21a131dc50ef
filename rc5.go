// Package rc5 implements the RC5 family of block ciphers, generic over the width of the machine word.
//
// RC5 is a Feistel-like cipher parameterized by word width w, number of rounds r, and key length b. Each round mixes
// the two halves of the block with XOR, modular addition, and rotations whose amounts depend on the data itself. The
// word width is a type parameter, so the arithmetic for each of the 8-, 16-, 32-, and 64-bit variants is resolved at
// compile time.
//
// Two key schedules are provided. [New] uses the interleaved schedule, which produces 2r+1 subkeys and advances its
// mixing indexes by each other's values. [NewReference] uses the schedule from [The RC5 Encryption Algorithm], which
// produces 2r+2 subkeys; ciphers built with it interoperate with other RC5 implementations.
//
// This package provides no modes of operation, padding, or authentication, and makes no attempt to be constant-time.
//
// [The RC5 Encryption Algorithm]: https://people.csail.mit.edu/rivest/Rivest-rc5rev.pdf
package rc5

import (
	"crypto/cipher"
	"slices"
	"strconv"

	"github.com/codahale/rc5/internal/words"
)

// MaxReferenceRounds is the largest number of rounds supported by the reference schedule.
const MaxReferenceRounds = 255

// MaxReferenceKeySize is the largest key, in bytes, supported by the reference schedule.
const MaxReferenceKeySize = 255

// KeySizeError is returned when a key is too long for the chosen schedule.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc5: invalid key size " + strconv.Itoa(int(k))
}

// RoundsError is returned when the number of rounds is out of range for the chosen schedule.
type RoundsError int

func (r RoundsError) Error() string {
	return "rc5: invalid number of rounds " + strconv.Itoa(int(r))
}

// A Cipher is an RC5 instance with an expanded key. It implements [cipher.Block] over little-endian words.
//
// Cipher instances are immutable and safe for concurrent use.
type Cipher[W Word[W]] struct {
	s  []W // the full key schedule
	rk []W // the round subkeys, two per round
}

var (
	_ cipher.Block = (*Cipher[Word8])(nil)
	_ cipher.Block = (*Cipher[Word16])(nil)
	_ cipher.Block = (*Cipher[Word32])(nil)
	_ cipher.Block = (*Cipher[Word64])(nil)
)

// New returns a Cipher using the interleaved key schedule. Rounds run over subkeys S[0] through S[2r-1], after the
// input is whitened with S[0] and S[1].
//
// It returns a RoundsError if rounds is less than one. Secrets of any length, including zero, are accepted.
func New[W Word[W]](secret []byte, rounds int) (*Cipher[W], error) {
	if rounds < 1 {
		return nil, RoundsError(rounds)
	}

	s := ExpandKey[W](secret, rounds)
	return &Cipher[W]{s: s, rk: s[:2*rounds]}, nil
}

// NewReference returns a Cipher using the reference key schedule. Rounds run over subkeys S[2] through S[2r+1],
// after the input is whitened with S[0] and S[1].
//
// It returns a RoundsError if rounds is not in [0,MaxReferenceRounds] and a KeySizeError if the secret is longer than
// MaxReferenceKeySize.
func NewReference[W Word[W]](secret []byte, rounds int) (*Cipher[W], error) {
	if rounds < 0 || rounds > MaxReferenceRounds {
		return nil, RoundsError(rounds)
	}

	if len(secret) > MaxReferenceKeySize {
		return nil, KeySizeError(len(secret))
	}

	s := ExpandReferenceKey[W](secret, rounds)
	return &Cipher[W]{s: s, rk: s[2:]}, nil
}

// Rounds returns the number of rounds the cipher performs.
func (c *Cipher[W]) Rounds() int {
	return len(c.rk) / 2
}

// Subkeys returns a copy of the expanded key schedule.
func (c *Cipher[W]) Subkeys() []W {
	return slices.Clone(c.s)
}

// EncryptWords encrypts the block (A, B).
func (c *Cipher[W]) EncryptWords(block [2]W) [2]W {
	a, b := block[0]+c.s[0], block[1]+c.s[1]
	for i := 0; i < len(c.rk); i += 2 {
		a = RotateLeft(a^b, b) + c.rk[i]
		b = RotateLeft(b^a, a) + c.rk[i+1]
	}
	return [2]W{a, b}
}

// DecryptWords decrypts the block (A, B). It is the exact inverse of EncryptWords.
func (c *Cipher[W]) DecryptWords(block [2]W) [2]W {
	a, b := block[0], block[1]
	for i := len(c.rk) - 2; i >= 0; i -= 2 {
		b = RotateRight(b-c.rk[i+1], a) ^ a
		a = RotateRight(a-c.rk[i], b) ^ b
	}
	return [2]W{a - c.s[0], b - c.s[1]}
}

// BlockSize returns the cipher's block size in bytes, which is twice the word size.
func (c *Cipher[W]) BlockSize() int {
	return 2 * Size[W]()
}

// Encrypt encrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
func (c *Cipher[W]) Encrypt(dst, src []byte) {
	c.checkBuffers(dst, src)
	n := Size[W]()
	out := c.EncryptWords([2]W{words.Load[W](src), words.Load[W](src[n:])})
	words.Store(dst, out[0])
	words.Store(dst[n:], out[1])
}

// Decrypt decrypts the first block in src into dst. Dst and src must overlap entirely or not at all.
func (c *Cipher[W]) Decrypt(dst, src []byte) {
	c.checkBuffers(dst, src)
	n := Size[W]()
	out := c.DecryptWords([2]W{words.Load[W](src), words.Load[W](src[n:])})
	words.Store(dst, out[0])
	words.Store(dst[n:], out[1])
}

func (c *Cipher[W]) checkBuffers(dst, src []byte) {
	n := c.BlockSize()
	if len(src) < n {
		panic("rc5: input not full block")
	}

	if len(dst) < n {
		panic("rc5: output not full block")
	}

	if words.InexactOverlap(dst[:n], src[:n]) {
		panic("rc5: invalid buffer overlap")
	}
}

// Encrypt expands the secret with the interleaved schedule and encrypts a single block. Callers encrypting more than
// one block under the same secret should use New instead.
//
// Encrypt panics if rounds is less than one.
func Encrypt[W Word[W]](block [2]W, secret []byte, rounds int) [2]W {
	c, err := New[W](secret, rounds)
	if err != nil {
		panic(err)
	}
	return c.EncryptWords(block)
}

// Decrypt expands the secret with the interleaved schedule and decrypts a single block.
//
// Decrypt panics if rounds is less than one.
func Decrypt[W Word[W]](block [2]W, secret []byte, rounds int) [2]W {
	c, err := New[W](secret, rounds)
	if err != nil {
		panic(err)
	}
	return c.DecryptWords(block)
}
