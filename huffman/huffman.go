// Package huffman implements static Huffman coding of byte streams.
//
// A compressed stream starts with a header holding the original size and the
// weight of every symbol that occurs in the input, followed by the codes
// packed most-significant-bit first. The code tree is built from a
// weight-sorted node array instead of a heap, so the decoder can rebuild the
// exact tree of the encoder from the header alone.
package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// alphabetSize is the number of distinct symbols, one per byte value.
	alphabetSize = 256
	// bufferSize is the size of the bit channel buffers in bytes.
	bufferSize = 256
)

var (
	// ErrOpen indicates that an input or output file could not be opened.
	ErrOpen = errors.New("huffman: open failed")
	// ErrReadWrite indicates a read or write failure that is not a normal end of stream.
	ErrReadWrite = errors.New("huffman: read/write failed")
	// ErrInputTooLarge indicates that the input does not fit the 32-bit size field.
	ErrInputTooLarge = errors.New("huffman: input too large")
	// ErrTruncatedHeader indicates that the stream ended inside the header.
	ErrTruncatedHeader = errors.New("huffman: truncated header")
	// ErrCorruptHeader indicates a header that no encoder could have produced.
	ErrCorruptHeader = errors.New("huffman: corrupt header")
	// ErrTruncatedPayload indicates that the payload ended before all symbols were decoded.
	ErrTruncatedPayload = errors.New("huffman: truncated payload")
	// ErrInvalidWorkers indicates a worker count below one.
	ErrInvalidWorkers = errors.New("huffman: worker count must be at least 1")
)

// codec holds the state of a single encode or decode run.
type codec struct {
	config Config
	freq   FrequencyTable
	header Header
	tree   *tree
}

func newCodec(opts []Option) (*codec, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return &codec{config: cfg}, nil
}

// Encode compresses data and writes the header and payload to w.
func Encode(w io.Writer, data []byte, opts ...Option) error {
	c, err := newCodec(opts)
	if err != nil {
		return err
	}
	return c.encode(w, data)
}

// Decode reads a compressed stream from r and writes the original bytes to w.
// Bytes following the payload are not interpreted.
func Decode(w io.Writer, r io.Reader, opts ...Option) error {
	c, err := newCodec(opts)
	if err != nil {
		return err
	}
	return c.decode(w, r)
}

// Compress returns the compressed form of data.
func Compress(data []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, data, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress returns the original bytes of a compressed stream.
func Decompress(data []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(&buf, bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *codec) encode(w io.Writer, data []byte) error {
	if uint64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(data))
	}
	log := c.config.Logger

	c.freq = CountFrequencies(data, c.config.Workers)
	active := c.freq.Active()
	log.Debugf("counted %d bytes, %d distinct symbols, %d workers", len(data), active, c.config.Workers)

	c.tree = newTree(active)
	c.tree.seedFrequencies(&c.freq)
	c.header = Header{
		OriginalSize: uint32(len(data)),
		Entries:      c.tree.entries(),
	}
	if err := writeHeader(w, c.header); err != nil {
		return err
	}
	if active <= 1 {
		// Zero or one symbol: the header alone describes the input.
		return nil
	}

	c.tree.pair()
	log.Debugf("built tree: %d nodes, max code length %d", c.tree.size, c.tree.maxDepth())

	bw := newBitWriter(w)
	enc := newEncoder(c.tree, bw)
	for _, b := range data {
		if err := enc.encode(b); err != nil {
			return err
		}
	}
	if err := bw.flush(); err != nil {
		return err
	}
	log.Debugf("wrote %d header bytes and %d payload bytes", c.header.Size(), bw.written)
	return nil
}

func (c *codec) decode(w io.Writer, r io.Reader) error {
	log := c.config.Logger

	header, err := ReadHeader(r)
	if err != nil {
		return err
	}
	c.header = header
	log.Debugf("read header: %d bytes, %d distinct symbols", header.OriginalSize, len(header.Entries))
	if header.OriginalSize == 0 {
		return nil
	}

	c.tree = newTree(len(header.Entries))
	c.tree.seedEntries(header.Entries)
	c.tree.pair()

	out := bufio.NewWriter(w)
	dec := newDecoder(c.tree, newBitReader(r))
	if err := dec.decode(out, header.OriginalSize); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrReadWrite, err)
	}
	return nil
}
