package monoimg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Container layout: magic(4) + version(1) + width(uint16 BE) +
// height(uint16 BE), followed by one zstd frame holding the packed bit
// plane.
const (
	containerMagic   = "WGLI"
	containerVersion = 1
)

// Encode serializes the image into the asset container.
func Encode(m *Image) ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteString(containerMagic)
	b.WriteByte(containerVersion)
	if err := binary.Write(b, binary.BigEndian, uint16(m.width)); err != nil {
		return nil, err
	}
	if err := binary.Write(b, binary.BigEndian, uint16(m.height)); err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(b)
	if err != nil {
		return nil, err
	}
	if _, err := enc.Write(m.bits); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Decode parses an asset container produced by Encode.
func Decode(data []byte) (*Image, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, len(containerMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrContainer)
	}
	if string(magic) != containerMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrContainer, magic)
	}
	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrContainer)
	}
	if version != containerVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrContainer, version)
	}

	var w16, h16 uint16
	if err := binary.Read(r, binary.BigEndian, &w16); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrContainer)
	}
	if err := binary.Read(r, binary.BigEndian, &h16); err != nil {
		return nil, fmt.Errorf("%w: truncated header", ErrContainer)
	}

	m, err := New(int(w16), int(h16))
	if err != nil {
		return nil, err
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	plain, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContainer, err)
	}
	if len(plain) != len(m.bits) {
		return nil, fmt.Errorf("%w: payload %d bytes, want %d", ErrContainer, len(plain), len(m.bits))
	}
	copy(m.bits, plain)
	return m, nil
}
