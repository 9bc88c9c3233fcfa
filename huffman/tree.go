package huffman

type nodeKind uint8

const (
	leafNode nodeKind = iota
	internalNode
)

// node is an entry of the sorted node array.
// For a leaf id is the symbol, for an internal node it is the pair index.
type node struct {
	kind   nodeKind
	id     int
	weight uint64
}

// tree is a Huffman tree stored as an array sorted ascending by weight.
//
// Pairing consumes slots left to right, two at a time. The internal node
// created from slots a and b=a+1 gets pair index b/2, so its children are
// always slots 2p-1 and 2p, and the parent of slot s is internalSlot[(s+1)/2].
// Consumed slots never move again, which keeps these relations valid once
// the tree is complete.
type tree struct {
	nodes        []node // slot 0 is unused
	size         int    // last occupied slot
	next         int    // first slot not yet paired
	active       int    // number of leaves
	leafSlot     [alphabetSize]int
	internalSlot []int // indexed by pair index 1..active-1
}

func newTree(active int) *tree {
	return &tree{
		nodes:        make([]node, 2*active),
		next:         1,
		active:       active,
		internalSlot: make([]int, active),
	}
}

// insert places n after every node with weight <= n.weight, shifting heavier
// nodes one slot right, and returns the slot of n.
func (t *tree) insert(n node) int {
	i := t.size
	t.size++
	for i > 0 && t.nodes[i].weight > n.weight {
		t.nodes[i+1] = t.nodes[i]
		t.setSlot(t.nodes[i+1], i+1)
		i--
	}
	i++
	t.nodes[i] = n
	t.setSlot(n, i)
	return i
}

func (t *tree) setSlot(n node, slot int) {
	if n.kind == leafNode {
		t.leafSlot[n.id] = slot
	} else {
		t.internalSlot[n.id] = slot
	}
}

// seedFrequencies inserts a leaf for every symbol that occurs, in symbol order.
func (t *tree) seedFrequencies(freq *FrequencyTable) {
	for symbol, count := range freq {
		if count > 0 {
			t.insert(node{kind: leafNode, id: symbol, weight: uint64(count)})
		}
	}
}

// seedEntries inserts a leaf per header entry in the recorded order.
func (t *tree) seedEntries(entries []Entry) {
	for _, e := range entries {
		t.insert(node{kind: leafNode, id: int(e.Symbol), weight: uint64(e.Weight)})
	}
}

// entries returns the leaves in array order. Only valid before pair.
func (t *tree) entries() []Entry {
	entries := make([]Entry, 0, t.size)
	for slot := 1; slot <= t.size; slot++ {
		n := t.nodes[slot]
		entries = append(entries, Entry{Symbol: byte(n.id), Weight: uint32(n.weight)})
	}
	return entries
}

// pair combines the two lightest unpaired nodes until only the root is left.
func (t *tree) pair() {
	for t.pairNext() {
	}
}

// pairNext inserts the parent of the next two unpaired slots.
// It reports false once the root is the only unpaired node.
func (t *tree) pairNext() bool {
	if t.next >= t.size {
		return false
	}
	a, b := t.next, t.next+1
	t.next += 2
	t.insert(node{
		kind:   internalNode,
		id:     b / 2,
		weight: t.nodes[a].weight + t.nodes[b].weight,
	})
	return true
}

func (t *tree) root() int { return t.size }

func (t *tree) parent(slot int) int { return t.internalSlot[(slot+1)/2] }

// depth returns the code length of symbol.
func (t *tree) depth(symbol byte) int {
	d := 0
	for slot := t.leafSlot[symbol]; slot < t.root(); slot = t.parent(slot) {
		d++
	}
	return d
}

func (t *tree) maxDepth() int {
	longest := 0
	for slot := 1; slot <= t.size; slot++ {
		if n := t.nodes[slot]; n.kind == leafNode {
			if d := t.depth(byte(n.id)); d > longest {
				longest = d
			}
		}
	}
	return longest
}

// sorted reports whether the occupied slots are ascending by weight.
func (t *tree) sorted() bool {
	for slot := 2; slot <= t.size; slot++ {
		if t.nodes[slot-1].weight > t.nodes[slot].weight {
			return false
		}
	}
	return true
}
