package hashext

import (
	"fmt"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDigestFormat is returned when a digest is not
	// exactly DigestLength hex characters.
	ErrInvalidDigestFormat = errors.New("invalid digest format")

	// ErrInvalidEncodingInput is returned when user supplied text
	// can not be decoded with the selected Encoding.
	ErrInvalidEncodingInput = errors.New("invalid encoding input")

	// ErrBaseLengthMismatch is returned when an assumed base is given
	// together with a base length it does not have.
	ErrBaseLengthMismatch = errors.New("base length mismatch")
)

// BlockSizeError is the panic value of CompressBlock when it receives
// a block that is not BlockSize bytes long.
// Padding guarantees alignment, so this is always a programming error.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return fmt.Sprintf("invalid block size: expected %d bytes, got %d", BlockSize, int(b))
}

// BitLengthError is the panic value of ForgePadding when the total
// length is not a whole number of bytes.
type BitLengthError uint64

func (b BitLengthError) Error() string {
	return fmt.Sprintf("invalid bit length: %d is not a multiple of 8", uint64(b))
}
