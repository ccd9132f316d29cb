// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the set-algebra layer: every operation here is a composition of the
// single-item primitives and the cursor, so each is O(n) or
// O(n log n) by nature

// ContainsAll - true if every argument is present, O(m log n)
func (tree *Tree) ContainsAll(items []Item) bool {
	for _, item := range items {
		if !tree.Contains(item) {
			return false
		}
	}
	return true
}

// RemoveAll - ordered removal of a batch, true if anything was
// removed, O(m log n)
func (tree *Tree) RemoveAll(items []Item) bool {
	changed := false
	for _, item := range items {
		if tree.Remove(item) {
			changed = true
		}
	}
	return changed
}

// RetainAll - remove every stored item not Equal to one of the
// arguments, true if anything was removed, O(n·m)
func (tree *Tree) RetainAll(items []Item) bool {
	var unwanted []Item
scan:
	for cursor := tree.NewCursor(); ; {
		p := cursor.nextNode()
		if nil == p {
			break scan
		}
		for _, item := range items {
			if item.Equal(p.item) {
				continue scan
			}
		}
		unwanted = append(unwanted, p.item)
	}

	for _, item := range unwanted {
		tree.Remove(item)
	}
	return 0 != len(unwanted)
}

// IsEqual - structural equality: both trees yield pairwise Equal
// items in traversal order, O(n)
func (tree *Tree) IsEqual(other *Tree) bool {
	if tree == other {
		return true
	}
	if nil == other || tree.count != other.count {
		return false
	}

	a := tree.NewCursor()
	b := other.NewCursor()
	for {
		p := a.nextNode()
		q := b.nextNode()
		if nil == p || nil == q {
			return nil == p && nil == q
		}
		if !p.item.Equal(q.item) {
			return false
		}
	}
}

// Items - materialise all items in traversal (pre-)order
//
// position 0 is always the root item
func (tree *Tree) Items() []Item {
	items := make([]Item, 0, tree.count)
	for cursor := tree.NewCursor(); ; {
		p := cursor.nextNode()
		if nil == p {
			return items
		}
		items = append(items, p.item)
	}
}
