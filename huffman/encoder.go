package huffman

import "fmt"

// encoder writes the code of each symbol of a complete tree.
type encoder struct {
	tree   *tree
	output *bitWriter
	// stack holds the code bits leaf first. A code is never longer than the
	// number of internal nodes, active-1.
	stack []uint8
}

func newEncoder(t *tree, w *bitWriter) *encoder {
	return &encoder{
		tree:   t,
		output: w,
		stack:  make([]uint8, 0, max(t.active-1, 0)),
	}
}

// encode walks from the leaf of symbol to the root and writes the collected
// bits in reverse, root first. Odd slots yield 1, even slots 0.
func (e *encoder) encode(symbol byte) error {
	e.stack = e.stack[:0]
	root := e.tree.root()
	for slot := e.tree.leafSlot[symbol]; slot < root; slot = e.tree.parent(slot) {
		if len(e.stack) == cap(e.stack) {
			return fmt.Errorf("huffman: code for symbol %d exceeds %d bits", symbol, cap(e.stack))
		}
		e.stack = append(e.stack, uint8(slot%2))
	}

	for i := len(e.stack) - 1; i >= 0; i-- {
		if err := e.output.writeBit(e.stack[i]); err != nil {
			return err
		}
	}
	return nil
}
