package hashext

import (
	"encoding/binary"
	"encoding/hex"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"math/bits"
)

const (
	// BlockSize is the number of bytes consumed by a single compression step
	BlockSize = 64

	// Size is the number of bytes in a serialized State
	Size = 16

	// DigestLength is the number of hex characters in a digest
	DigestLength = Size * 2

	blockBits = BlockSize * 8

	// lengthBits is the size of the trailing length field of the padding
	lengthBits = 64
)

const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// State is the running MD5 accumulator (A, B, C, D).
//
// A State created by InitialState and a State decoded from a published
// digest by StateFromDigest are indistinguishable to CompressBlock.
// That is what makes length extension possible.
type State [4]uint32

// InitialState returns the standard MD5 initialization vector.
func InitialState() State {
	return State{init0, init1, init2, init3}
}

// StateFromDigest resumes a State from a digest produced by DigestOf.
// Each group of 8 hex characters is a little-endian word.
func StateFromDigest(digest string) (State, error) {
	if len(digest) != DigestLength {
		return State{}, errors.Wrapf(
			ErrInvalidDigestFormat,
			"expected %d hex characters, got %d",
			DigestLength,
			len(digest),
		)
	}

	raw, err := hex.DecodeString(digest)
	if err != nil {
		return State{}, errors.Wrap(ErrInvalidDigestFormat, err.Error())
	}

	var state State
	for i := range state {
		state[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}

	return state, nil
}

// DigestOf serializes the state as 32 lowercase hex characters.
func DigestOf(state State) string {
	var raw [Size]byte
	for i, word := range state {
		binary.LittleEndian.PutUint32(raw[i*4:], word)
	}

	return hex.EncodeToString(raw[:])
}

// Digest is a shorthand for DigestOf(s)
func (s State) Digest() string {
	return DigestOf(s)
}

// Pad applies MD5 padding to the message.
//
// A non-empty message whose length is already a multiple of BlockSize is
// returned as is (as a copy). The empty message still receives a full
// padding-only block.
func Pad(message []byte) []byte {
	return padWithLength(message, uint64(len(message))*8)
}

// padWithLength pads message as if its length in bits were n.
// n decides both the amount of filler and the trailing length field.
func padWithLength(message []byte, n uint64) []byte {
	if n > 0 && n%blockBits == 0 {
		return append([]byte(nil), message...)
	}

	padding := blockBits - n%blockBits

	// no room left for 0x80 and the length field, spill into the next block
	if padding <= lengthBits {
		padding += blockBits
	}

	zeros := (padding - lengthBits - 8) / 8

	padded := make([]byte, len(message), len(message)+int(padding/8))
	copy(padded, message)

	padded = append(padded, 0x80)
	padded = append(padded, make([]byte, zeros)...)
	padded = binary.LittleEndian.AppendUint64(padded, n)

	return padded
}

// CompressBlock runs the 64 MD5 steps over block and feeds the result
// forward into state. state is modified in place and returned.
//
// It panics with BlockSizeError if block is not exactly BlockSize bytes.
func CompressBlock(state *State, block []byte) *State {
	if len(block) != BlockSize {
		panic(BlockSizeError(len(block)))
	}

	var words [16]uint32
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	a, b, c, d := state[0], state[1], state[2], state[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch i / 16 {
		case 0:
			f = (b & c) | (^b & d)
			g = i
		case 1:
			f = (d & b) | (^d & c)
			g = (5*i + 1) % 16
		case 2:
			f = b ^ c ^ d
			g = (3*i + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * i) % 16
		}

		tmp := f + a + table.k[i] + words[g]
		a, b, c, d = d, b+bits.RotateLeft32(tmp, table.s[i]), b, c
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d

	return state
}

// blocks splits a padded buffer into BlockSize chunks.
// A trailing partial chunk is kept so that CompressBlock rejects it.
func blocks(padded []byte) [][]byte {
	return lo.Chunk(padded, BlockSize)
}

// compressAll feeds every block of padded into state
func compressAll(state *State, padded []byte) {
	for _, block := range blocks(padded) {
		CompressBlock(state, block)
	}
}

// Hash returns the hex digest of message.
func Hash(message []byte) string {
	state := InitialState()
	compressAll(&state, Pad(message))
	return state.Digest()
}

// HashString is a shorthand for Hash([]byte(message))
func HashString(message string) string {
	return Hash([]byte(message))
}
