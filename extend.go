package hashext

import (
	"encoding/hex"
	"github.com/pkg/errors"
)

// Forgery is the result of a length extension attack.
type Forgery struct {
	// MessageHex is hex of pad(assumedBase) followed by the extension.
	// When the assumed base was a filler, only the bytes after
	// the first BaseLength are meaningful, see Suffix.
	MessageHex string `json:"message" yaml:"message"`

	// Digest is the MD5 digest of the real secret followed by Suffix
	Digest string `json:"digest" yaml:"digest"`

	// BaseLength is the length of the secret the forgery was computed for
	BaseLength int `json:"base_length" yaml:"base_length"`
}

// Message returns the decoded MessageHex
func (f Forgery) Message() ([]byte, error) {
	message, err := hex.DecodeString(f.MessageHex)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncodingInput, err.Error())
	}

	return message, nil
}

// Suffix returns the glue padding followed by the extension.
// These are the bytes to append after the real secret.
func (f Forgery) Suffix() ([]byte, error) {
	message, err := f.Message()
	if err != nil {
		return nil, err
	}

	if f.BaseLength < 0 || f.BaseLength > len(message) {
		return nil, errors.Wrapf(ErrBaseLengthMismatch, "base length %d is out of range", f.BaseLength)
	}

	return message[f.BaseLength:], nil
}

// ForgePadding pads message as if it were the tail of a message
// that is n bits long in total.
// The amount of filler and the trailing length field are both derived from n,
// not from the length of message.
// n must be a multiple of 8, otherwise ForgePadding panics with BitLengthError.
func ForgePadding(message []byte, n uint64) []byte {
	if n%8 != 0 {
		panic(BitLengthError(n))
	}

	return padWithLength(message, n)
}

// Extend computes MD5(secret || glue padding || extension) knowing only
// baseDigest = MD5(secret) and len(secret) = len(assumedBase).
// The content of assumedBase only shows up in Forgery.MessageHex.
func Extend(assumedBase []byte, baseDigest string, extension []byte) (Forgery, error) {
	state, err := StateFromDigest(baseDigest)
	if err != nil {
		return Forgery{}, err
	}

	payload := append(Pad(assumedBase), extension...)

	tail := ForgePadding(extension, uint64(len(payload))*8)
	compressAll(&state, tail)

	return Forgery{
		MessageHex: hex.EncodeToString(payload),
		Digest:     state.Digest(),
		BaseLength: len(assumedBase),
	}, nil
}

// ExtendString is a shorthand for Extend with string arguments
func ExtendString(assumedBase, baseDigest, extension string) (Forgery, error) {
	return Extend([]byte(assumedBase), baseDigest, []byte(extension))
}
