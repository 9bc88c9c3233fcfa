package huffman

import (
	"fmt"
	"io"
)

// bitWriter packs bits most-significant first into a fixed buffer and
// writes the buffer to output whenever it fills up.
type bitWriter struct {
	output  io.Writer
	buffer  [bufferSize]byte
	pos     int   // Bits used in buffer
	written int64 // Bytes written to output
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{output: w}
}

func (bw *bitWriter) writeBit(bit uint8) error {
	if bw.pos == bufferSize*8 {
		if err := bw.write(bw.buffer[:]); err != nil {
			return err
		}
		bw.buffer = [bufferSize]byte{}
		bw.pos = 0
	}

	if bit != 0 {
		bw.buffer[bw.pos>>3] |= 1 << (7 - bw.pos%8)
	}
	bw.pos++
	return nil
}

// flush writes the occupied bytes. Unused low bits of the last byte stay zero.
func (bw *bitWriter) flush() error {
	if bw.pos == 0 {
		return nil
	}
	if err := bw.write(bw.buffer[:(bw.pos+7)>>3]); err != nil {
		return err
	}
	bw.buffer = [bufferSize]byte{}
	bw.pos = 0
	return nil
}

func (bw *bitWriter) write(p []byte) error {
	n, err := bw.output.Write(p)
	bw.written += int64(n)
	if err != nil {
		return fmt.Errorf("%w: payload: %w", ErrReadWrite, err)
	}
	if n != len(p) {
		return fmt.Errorf("%w: payload: %w", ErrReadWrite, io.ErrShortWrite)
	}
	return nil
}

// bitReader returns the bits of input most-significant first, refilling
// a fixed buffer as needed.
type bitReader struct {
	input  io.Reader
	buffer [bufferSize]byte
	bits   int // Valid bits in buffer
	pos    int // Next bit to return
	eof    bool
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{input: r}
}

// readBit returns the next bit, or io.EOF once the input is drained.
func (br *bitReader) readBit() (uint8, error) {
	if br.pos == br.bits {
		if br.eof {
			return 0, io.EOF
		}
		n, err := io.ReadFull(br.input, br.buffer[:])
		switch err {
		case nil:
		case io.EOF, io.ErrUnexpectedEOF:
			br.eof = true
		default:
			return 0, fmt.Errorf("%w: payload: %w", ErrReadWrite, err)
		}
		br.bits = n * 8
		br.pos = 0
		if br.bits == 0 {
			return 0, io.EOF
		}
	}

	bit := (br.buffer[br.pos>>3] >> (7 - br.pos%8)) & 1
	br.pos++
	return bit, nil
}
