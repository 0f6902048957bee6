package encoding

import (
	"github.com/klauspost/compress/zstd"
)

// maxZstdWindow caps decoder memory for hostile frames on the command line.
const maxZstdWindow = 1 << 30

// ZstdEncoderDecoder implements the EncoderAndDecoder interface using Zstandard.
type ZstdEncoderDecoder struct{}

// Encode compresses the input data using Zstandard in a single frame.
func (z ZstdEncoderDecoder) Encode(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
	)
	if err != nil {
		return nil, err
	}
	defer encoder.Close()

	return encoder.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Decode decompresses the input data using Zstandard.
func (z ZstdEncoderDecoder) Decode(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxZstdWindow),
	)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	return decoder.DecodeAll(data, nil)
}
