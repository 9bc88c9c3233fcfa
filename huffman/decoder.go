package huffman

import (
	"fmt"
	"io"
)

// decoder expands bits into symbols by walking a complete tree.
type decoder struct {
	tree  *tree
	input *bitReader
}

func newDecoder(t *tree, r *bitReader) *decoder {
	return &decoder{tree: t, input: r}
}

// decode writes n symbols to w. It stops right after the n-th symbol, so
// padding bits and anything after the payload are never interpreted.
func (d *decoder) decode(w io.ByteWriter, n uint32) error {
	if n == 0 {
		return nil
	}
	root := d.tree.nodes[d.tree.root()]

	if root.kind == leafNode {
		// Single symbol: its code is empty and the payload has no bits.
		for i := uint32(0); i < n; i++ {
			if err := w.WriteByte(byte(root.id)); err != nil {
				return fmt.Errorf("%w: %w", ErrReadWrite, err)
			}
		}
		return nil
	}

	var produced uint32
	current := root
	for {
		bit, err := d.input.readBit()
		if err == io.EOF {
			return fmt.Errorf("%w: decoded %d of %d bytes", ErrTruncatedPayload, produced, n)
		}
		if err != nil {
			return err
		}

		// Children of pair p are slots 2p-1 (bit 1) and 2p (bit 0).
		current = d.tree.nodes[2*current.id-int(bit)]
		if current.kind != leafNode {
			continue
		}

		if err := w.WriteByte(byte(current.id)); err != nil {
			return fmt.Errorf("%w: %w", ErrReadWrite, err)
		}
		produced++
		if produced == n {
			return nil
		}
		current = root
	}
}
