package encoding

import "errors"

var (
	ErrMalformedHex       = errors.New("malformed hex input")
	ErrUnknownCompression = errors.New("unknown compression")
)

type Encoder interface {
	Encode([]byte) ([]byte, error)
}

type Decoder interface {
	Decode([]byte) ([]byte, error)
}

type EncoderAndDecoder interface {
	Encoder
	Decoder
}
