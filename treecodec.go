package huffpack

// writeTree writes the tree section of an artifact: a pre-order walk in which
// each leaf is a 1 bit followed by its 8-bit symbol and each internal node is
// a single 0 bit.  A tree that is a single leaf is written as the bare symbol
// byte.  The section is padded to a byte boundary.
func writeTree(bw *BitWriter, t *Tree) error {
	if leaf, ok := t.Root().(*Leaf); ok {
		return bw.WriteByte(byte(leaf.symbol))
	}

	var walk func(Node) error
	walk = func(node Node) error {
		switch x := node.(type) {
		case *Leaf:
			if err := bw.WriteBit(true); err != nil {
				return err
			}
			return bw.WriteByte(byte(x.symbol))
		case *Internal:
			if err := bw.WriteBit(false); err != nil {
				return err
			}
			if err := walk(x.left); err != nil {
				return err
			}
			return walk(x.right)
		}
		panic("unreachable")
	}
	if err := walk(t.Root()); err != nil {
		return err
	}
	_, err := bw.Align()
	return err
}

// readTree reads a tree section holding numLeaves leaves, as written by
// writeTree.  Every failure is a *CorruptArtifactError.
func readTree(br *BitReader, numLeaves int) (*Tree, error) {
	if numLeaves == 1 {
		b, err := br.ReadByte()
		if err != nil {
			return nil, corruptWrap(err, "truncated tree section")
		}
		return &Tree{root: &Leaf{symbol: Symbol(b)}, numLeaves: 1}, nil
	}

	var seen [NumSymbols]bool
	var leaves, internals int

	// A full binary tree with numLeaves leaves has numLeaves-1 internal
	// nodes, which also bounds the recursion depth.
	var readNode func() (Node, error)
	readNode = func() (Node, error) {
		isLeaf, err := br.ReadBit()
		if err != nil {
			return nil, corruptWrap(err, "truncated tree section")
		}

		if isLeaf {
			b, err := br.ReadByte()
			if err != nil {
				return nil, corruptWrap(err, "truncated tree section")
			}
			sym := Symbol(b)
			if seen[sym] {
				return nil, corruptf("symbol %d appears in more than one leaf", b)
			}
			seen[sym] = true
			leaves++
			if leaves > numLeaves {
				return nil, corruptf("tree has more than the %d leaves announced", numLeaves)
			}
			return &Leaf{symbol: sym}, nil
		}

		internals++
		if internals >= numLeaves {
			return nil, corruptf("tree has more than the %d internal nodes allowed", numLeaves-1)
		}
		left, err := readNode()
		if err != nil {
			return nil, err
		}
		right, err := readNode()
		if err != nil {
			return nil, err
		}
		return newInternal(left, right), nil
	}

	root, err := readNode()
	if err != nil {
		return nil, err
	}
	if leaves != numLeaves {
		return nil, corruptf("tree has %d leaves, expected %d", leaves, numLeaves)
	}
	br.Align()
	return &Tree{root: root, numLeaves: numLeaves}, nil
}
