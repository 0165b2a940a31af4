// Package codec frames and optionally compresses the binary layout of
// lane vectors for persistence.
//
// Codec selection is a breaking-change boundary: the frame stores the
// codec name, so frames written by one codec decode with the same codec
// looked up via ByName.
package codec

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec compresses and decompresses a marshalled register payload.
// Implementations must be safe for concurrent use.
type Codec interface {
	Name() string
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// Default is the codec used when none is specified.
var Default Codec = Raw{}

// maxPayloadSize caps the frame payload length accepted by Decode, so a
// corrupt length field cannot drive a multi-gigabyte allocation.
const maxPayloadSize = 64 << 20

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw":
		return Raw{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	default:
		return nil, false
	}
}

// Raw stores payloads uncompressed.
type Raw struct{}

func (Raw) Name() string { return "raw" }

func (Raw) Compress(data []byte) ([]byte, error) { return data, nil }

func (Raw) Decompress(data []byte) ([]byte, error) { return data, nil }

// LZ4 stores payloads in the LZ4 frame format.
type LZ4 struct{}

func (LZ4) Name() string { return "lz4" }

func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("codec: lz4 compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("codec: lz4 compress: %w", err)
	}
	return buf.Bytes(), nil
}

func (LZ4) Decompress(data []byte) ([]byte, error) {
	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("codec: lz4 decompress: %w", err)
	}
	return out, nil
}

// Zstd stores payloads as zstd frames.
type Zstd struct{}

func (Zstd) Name() string { return "zstd" }

func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd compress: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd decompress: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd decompress: %w", err)
	}
	return out, nil
}

// Encode writes a self-describing frame: codec name, payload length,
// then the compressed marshalled bytes of m.
func Encode(w io.Writer, c Codec, m encoding.BinaryMarshaler) error {
	if c == nil {
		c = Default
	}
	raw, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}
	payload, err := c.Compress(raw)
	if err != nil {
		return err
	}
	name := c.Name()
	if len(name) > 255 {
		return fmt.Errorf("codec: encode: codec name too long")
	}
	header := append([]byte{byte(len(name))}, name...)
	header = binary.LittleEndian.AppendUint32(header, uint32(len(payload)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}
	return nil
}

// Decode reads one frame written by Encode and unmarshals it into u.
// The codec is looked up from the frame header.
func Decode(r io.Reader, u encoding.BinaryUnmarshaler) error {
	var nameLen [1]byte
	if _, err := io.ReadFull(r, nameLen[:]); err != nil {
		return fmt.Errorf("codec: decode: %w", err)
	}
	name := make([]byte, nameLen[0])
	if _, err := io.ReadFull(r, name); err != nil {
		return fmt.Errorf("codec: decode: %w", err)
	}
	c, ok := ByName(string(name))
	if !ok {
		return fmt.Errorf("codec: decode: unknown codec %q", name)
	}
	var sizeBuf [4]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return fmt.Errorf("codec: decode: %w", err)
	}
	size := binary.LittleEndian.Uint32(sizeBuf[:])
	if size > maxPayloadSize {
		return fmt.Errorf("codec: decode: payload length %d exceeds limit %d", size, maxPayloadSize)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fmt.Errorf("codec: decode: %w", err)
	}
	raw, err := c.Decompress(payload)
	if err != nil {
		return err
	}
	return u.UnmarshalBinary(raw)
}
