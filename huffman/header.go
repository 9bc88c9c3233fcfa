package huffman

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	sizeFieldLen  = 4
	countFieldLen = 1
	entryLen      = 1 + 4
)

// Header describes a compressed stream.
//
// Wire format, integers big-endian:
//
//	originalSize = uint32
//	activeCount  = uint8 (256 is stored as 0)
//	repeat activeCount times:
//	  symbol = uint8
//	  weight = uint32
//
// Entries appear in tree insertion order: ascending weight, ties by symbol.
type Header struct {
	OriginalSize uint32
	Entries      []Entry
}

// Entry is the weight of a single symbol.
type Entry struct {
	Symbol byte
	Weight uint32
}

// Size returns the encoded size of the header in bytes.
func (h Header) Size() int {
	return sizeFieldLen + countFieldLen + len(h.Entries)*entryLen
}

func writeHeader(w io.Writer, h Header) error {
	buf := make([]byte, 0, h.Size())
	buf = binary.BigEndian.AppendUint32(buf, h.OriginalSize)
	buf = append(buf, byte(len(h.Entries)))
	for _, e := range h.Entries {
		buf = append(buf, e.Symbol)
		buf = binary.BigEndian.AppendUint32(buf, e.Weight)
	}

	n, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("%w: header: %w", ErrReadWrite, err)
	}
	if n != len(buf) {
		return fmt.Errorf("%w: header: %w", ErrReadWrite, io.ErrShortWrite)
	}
	return nil
}

// ReadHeader reads and validates a header from r.
// It consumes exactly the header bytes.
func ReadHeader(r io.Reader) (Header, error) {
	var fixed [sizeFieldLen + countFieldLen]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return Header{}, headerReadError(err)
	}

	h := Header{OriginalSize: binary.BigEndian.Uint32(fixed[:sizeFieldLen])}
	count := int(fixed[sizeFieldLen])
	if count == 0 {
		if h.OriginalSize == 0 {
			return h, nil
		}
		// A non-empty input with a zero count can only mean all 256 symbols.
		count = alphabetSize
	}

	raw := make([]byte, count*entryLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return Header{}, headerReadError(err)
	}

	h.Entries = make([]Entry, count)
	for i := range h.Entries {
		p := raw[i*entryLen:]
		h.Entries[i] = Entry{
			Symbol: p[0],
			Weight: binary.BigEndian.Uint32(p[1:entryLen]),
		}
	}

	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func headerReadError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncatedHeader
	}
	return fmt.Errorf("%w: header: %w", ErrReadWrite, err)
}

// validate checks that the entries could have been written by an encoder
// for an input of OriginalSize bytes.
func (h Header) validate() error {
	var seen [alphabetSize]bool
	var total uint64
	for i, e := range h.Entries {
		if e.Weight == 0 {
			return fmt.Errorf("%w: symbol %d has zero weight", ErrCorruptHeader, e.Symbol)
		}
		if seen[e.Symbol] {
			return fmt.Errorf("%w: symbol %d repeated", ErrCorruptHeader, e.Symbol)
		}
		seen[e.Symbol] = true
		if i > 0 && h.Entries[i-1].Weight > e.Weight {
			return fmt.Errorf("%w: entry %d out of order", ErrCorruptHeader, i)
		}
		total += uint64(e.Weight)
	}
	if total != uint64(h.OriginalSize) {
		return fmt.Errorf("%w: weights sum to %d, want %d", ErrCorruptHeader, total, h.OriginalSize)
	}
	return nil
}
