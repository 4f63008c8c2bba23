package hashext

import (
	"fmt"
	"github.com/pkg/errors"
)

// ExtendRequest describes a length extension attack
// as seen from outside of the library.
type ExtendRequest struct {
	// BaseLength is the length of the unknown secret in bytes
	BaseLength int

	// BaseDigest is the published digest of the unknown secret
	BaseDigest string

	// Extension is appended after the glue padding
	Extension []byte

	// AssumedBase is the secret itself, if known.
	// When nil, BaseLength zero bytes are used instead.
	AssumedBase []byte
}

// base returns the assumed base or a filler of BaseLength zero bytes
func (r ExtendRequest) base() ([]byte, error) {
	if r.BaseLength < 0 {
		return nil, errors.Wrapf(ErrBaseLengthMismatch, "negative base length %d", r.BaseLength)
	}

	if r.AssumedBase == nil {
		return make([]byte, r.BaseLength), nil
	}

	if len(r.AssumedBase) != r.BaseLength {
		return nil, errors.Wrapf(
			ErrBaseLengthMismatch,
			"assumed base is %d bytes, base length is %d",
			len(r.AssumedBase),
			r.BaseLength,
		)
	}

	return r.AssumedBase, nil
}

// cacheKey identifies the forgery produced for base
func (r ExtendRequest) cacheKey(base []byte) string {
	return HashString(fmt.Sprintf("%s:%x:%x", unifyString(r.BaseDigest), base, r.Extension))
}
