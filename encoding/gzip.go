package encoding

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipEncoderDecoder implements the EncoderAndDecoder interface using gzip.
type GzipEncoderDecoder struct{}

// Encode compresses the input data using gzip as a single member.
func (g GzipEncoderDecoder) Encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		_ = gw.Close()
		return nil, err
	}
	// Close flushes the footer; without it the stream is truncated.
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses the input data using gzip, reading every member.
func (g GzipEncoderDecoder) Decode(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return io.ReadAll(gr)
}
