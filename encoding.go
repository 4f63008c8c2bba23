package hashext

import (
	"encoding/hex"
	"fmt"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Encoding selects how user supplied text is turned into bytes
type Encoding int

const (
	// EncodingRaw takes the UTF-8 bytes of the text as is
	EncodingRaw Encoding = iota + 1

	// EncodingHex decodes the text as hex
	EncodingHex
)

var encodingNames = map[Encoding]string{
	EncodingRaw: "raw",
	EncodingHex: "hex",
}

// EncodingNames returns the names accepted by EncodingString
func EncodingNames() []string {
	return []string{encodingNames[EncodingRaw], encodingNames[EncodingHex]}
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}

	return fmt.Sprintf("Encoding(%d)", int(e))
}

// IsAEncoding reports whether e is one of the defined encodings
func (e Encoding) IsAEncoding() bool {
	_, ok := encodingNames[e]
	return ok
}

// EncodingString parses the name of an encoding, case-insensitive.
func EncodingString(s string) (Encoding, error) {
	s = unifyString(s)

	for encoding, name := range encodingNames {
		if name == s {
			return encoding, nil
		}
	}

	closest := lo.MinBy(EncodingNames(), func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})

	return 0, fmt.Errorf("unknown encoding %q, did you mean %q?", s, closest)
}

// Decode turns text into bytes.
// Malformed hex is reported as ErrInvalidEncodingInput.
func (e Encoding) Decode(text string) ([]byte, error) {
	switch e {
	case EncodingRaw:
		return []byte(text), nil
	case EncodingHex:
		decoded, err := hex.DecodeString(text)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidEncodingInput, err.Error())
		}

		return decoded, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %s", e)
	}
}

// Set implements pflag.Value
func (e *Encoding) Set(s string) error {
	encoding, err := EncodingString(s)
	if err != nil {
		return err
	}

	*e = encoding
	return nil
}

// Type implements pflag.Value
func (e *Encoding) Type() string {
	return "encoding"
}
