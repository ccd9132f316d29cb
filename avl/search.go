// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - ordered membership test
//
// O(log n) descent by Compare with an Equal check at every visited
// node, so a query that ties with stored items walks the tie-chain
// until an Equal item is found or the chain ends
func (tree *Tree) Contains(item Item) bool {
	if nil == tree.root || nil == item {
		return false
	}
	return nil != tree.root.descend(item, true)
}

// ContainsValue - linear membership test using Equal only
//
// O(n) full traversal applying the query item's Equal to every
// stored item; for queries whose value equality is not reachable
// through the ordering at all
func (tree *Tree) ContainsValue(item Item) bool {
	if nil == tree.root || nil == item {
		return false
	}
	for cursor := tree.NewCursor(); ; {
		p := cursor.nextNode()
		if nil == p {
			return false
		}
		if item.Equal(p.item) {
			return true
		}
	}
}

// FindGreater - minimal item strictly greater than the argument
//
// returns false when the argument is greater than or equal to every
// stored item; there is deliberately no fallback value
func (tree *Tree) FindGreater(item Item) (Item, bool) {
	if nil == tree.root || nil == item {
		return nil, false
	}

	var best *node
	for p := tree.root; nil != p; {
		if p.item.Compare(item) > 0 {
			best = p
			p = p.leq
		} else {
			p = p.gtr
		}
	}
	if nil == best {
		return nil, false
	}
	return best.item, true
}

// Greatest - the maximal item, false when the tree is empty
func (tree *Tree) Greatest() (Item, bool) {
	if nil == tree.root {
		return nil, false
	}
	p := tree.root
	for nil != p.gtr {
		p = p.gtr
	}
	return p.item, true
}
