package encoding

import (
	"encoding/hex"
	"fmt"
)

const upperHextable = "0123456789ABCDEF"

// HexEncoderDecoder implements the EncoderAndDecoder interface for base16 text.
// Encoding always succeeds; Upper switches the output alphabet.
type HexEncoderDecoder struct {
	Upper bool
}

// Encode renders every byte as two hex digits, high nibble first.
func (h HexEncoderDecoder) Encode(data []byte) ([]byte, error) {
	if h.Upper {
		return EncodeHexUpper(data), nil
	}
	return EncodeHex(data), nil
}

// Decode accepts upper and lower case digits.
func (h HexEncoderDecoder) Decode(data []byte) ([]byte, error) {
	return DecodeHex(data)
}

func EncodeHex(data []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(data)))
	hex.Encode(dst, data)
	return dst
}

func EncodeHexUpper(data []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(data)))
	for i, b := range data {
		dst[i*2] = upperHextable[b>>4]
		dst[i*2+1] = upperHextable[b&0x0f]
	}
	return dst
}

// DecodeHex fails on odd length or on any character outside [0-9a-fA-F].
func DecodeHex(text []byte) ([]byte, error) {
	if len(text)%2 == 1 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedHex, len(text))
	}
	dst := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(dst, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return dst[:n], nil
}
