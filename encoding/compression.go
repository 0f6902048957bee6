package encoding

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type Compression string

const (
	CompressionPlain   Compression = "plain"
	CompressionGzip    Compression = "gzip"
	CompressionDeflate Compression = "deflate"
	CompressionBrotli  Compression = "brotli"
	CompressionZstd    Compression = "zstd"
)

// ParseCompression normalizes a user supplied name. "br" is accepted as an
// alias for brotli and the empty string means plain.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "":
		return CompressionPlain, nil
	case "gzip":
		return CompressionGzip, nil
	case "deflate":
		return CompressionDeflate, nil
	case "brotli", "br":
		return CompressionBrotli, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownCompression, name)
	}
}

// codecFor returns nil for plain.
func codecFor(c Compression) (EncoderAndDecoder, error) {
	switch c {
	case CompressionGzip:
		return GzipEncoderDecoder{}, nil
	case CompressionDeflate:
		return DeflateEncoderDecoder{}, nil
	case CompressionBrotli:
		return BrotliEncoderDecoder{}, nil
	case CompressionZstd:
		return ZstdEncoderDecoder{}, nil
	case CompressionPlain, "":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
}

func Compress(data []byte, c Compression) ([]byte, error) {
	codec, err := codecFor(c)
	if err != nil || codec == nil {
		return data, err
	}
	compressed, err := codec.Encode(data)
	if err != nil {
		return nil, fmt.Errorf("%s compress: %w", c, err)
	}
	logrus.WithFields(logrus.Fields{
		"compression": c,
		"in":          len(data),
		"out":         len(compressed),
	}).Debug("Compressed input")
	return compressed, nil
}

func Decompress(data []byte, c Compression) ([]byte, error) {
	codec, err := codecFor(c)
	if err != nil || codec == nil {
		return data, err
	}
	decompressed, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompress: %w", c, err)
	}
	logrus.WithFields(logrus.Fields{
		"compression": c,
		"in":          len(data),
		"out":         len(decompressed),
	}).Debug("Decompressed payload")
	return decompressed, nil
}
