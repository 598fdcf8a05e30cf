package midi

import "encoding/binary"

const maxVarLenBytes = 4

// cursor is the only mutable state of a decode. It is copied to save a
// position and assigned back to restore it.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) eof(requested int) error {
	return &EOFError{Position: c.pos, Requested: requested, BufferSize: len(c.data)}
}

// readBytes returns the next n bytes. The slice aliases the buffer.
func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, c.eof(n)
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, c.eof(1)
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// readVarLen returns the variable length value at the exact parser location.
// On failure the position is left where the quantity started.
func (c *cursor) readVarLen() (uint32, error) {
	var val uint32
	for i := 0; i < maxVarLenBytes && c.pos+i < len(c.data); i++ {
		b := c.data[c.pos+i]
		val = val<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			c.pos += i + 1
			return val, nil
		}
	}
	return 0, c.eof(maxVarLenBytes)
}

// readChunkPrelude reads a 4-byte chunk ID and its 32-bit length.
func (c *cursor) readChunkPrelude() ([4]byte, uint32, error) {
	var id [4]byte
	b, err := c.readBytes(4)
	if err != nil {
		return id, 0, err
	}
	copy(id[:], b)

	size, err := c.readUint32()
	if err != nil {
		return id, 0, err
	}
	return id, size, nil
}
