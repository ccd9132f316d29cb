// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - ordered removal
//
// O(log n) descent exactly as Contains; returns false when no Equal
// item is reachable through the ordering
func (tree *Tree) Remove(item Item) bool {
	if nil == tree.root || nil == item {
		return false
	}
	p := tree.root.descend(item, true)
	if nil == p {
		return false
	}
	tree.detach(p)
	return true
}

// RemoveValue - linear removal using Equal only, O(n)
//
// applies the query item's Equal to every stored item, mirroring
// ContainsValue
func (tree *Tree) RemoveValue(item Item) bool {
	if nil == tree.root || nil == item {
		return false
	}
	for cursor := tree.NewCursor(); ; {
		p := cursor.nextNode()
		if nil == p {
			return false
		}
		if item.Equal(p.item) {
			tree.detach(p)
			return true
		}
	}
}

// detach - unlink a node from the tree
//
// a node with at most one child is replaced by that child.  A node
// with two children is replaced by the rightmost node of its lesser
// sub-tree: that node carries the greatest of the lesser items, has
// no greater child of its own and so keeps every height difference
// within reach of the standard rotations.  Balance propagation runs
// from the deepest modified node to the root in every case.
func (tree *Tree) detach(p *node) {
	up := p.up

	var replacement *node
	start := up // where propagation begins
	if nil == p.leq || nil == p.gtr {
		replacement = p.leq
		if nil == replacement {
			replacement = p.gtr
		}
		if nil != replacement {
			replacement.up = up
		}
	} else {
		q := p.leq
		for nil != q.gtr {
			q = q.gtr
		}
		if q == p.leq {
			// q keeps its own lesser sub-tree
			start = q
		} else {
			start = q.up
			q.up.gtr = q.leq
			if nil != q.leq {
				q.leq.up = q.up
			}
			q.leq = p.leq
			q.leq.up = q
		}
		q.gtr = p.gtr
		q.gtr.up = q
		q.up = up
		q.height = p.height
		q.balance = p.balance
		replacement = q
	}

	if nil == up {
		tree.root = replacement
	} else if up.leq == p {
		up.leq = replacement
	} else if up.gtr == p {
		up.gtr = replacement
	} else {
		panic("avl: detach: node is not a child of its parent")
	}

	if nil != start {
		propagate(start)
	}
	if nil != tree.root {
		tree.root = tree.root.top()
	}

	freeNode(p) // return deleted node to pool
	tree.count -= 1
}
