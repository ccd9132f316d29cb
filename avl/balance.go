// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// propagate - restore heights and the AVL bound from p towards the
// root
//
// deliberately a loop, not recursion: the walk is bounded by the tree
// height.  Propagation runs after every structural change, insertion
// and all detach cases alike, and stops at the first ancestor whose
// cached sub-tree height is unchanged by the mutation since nothing
// above such a node can have moved.
func propagate(p *node) {
	for nil != p {
		previous := p.height
		p.refresh()
		if p.balance < -1 || p.balance > 1 {
			p = p.rebalance()
		}
		if p.height == previous {
			return
		}
		p = p.up
	}
}

// rebalance - single or double rotation at an out-of-bound node
//
// classic AVL case analysis: rotate towards the light side, preceded
// by a rotation at the heavy child when that child's far side
// out-weighs its near side.  Returns the node now occupying p's old
// position.
func (p *node) rebalance() *node {
	if p.balance < 0 {
		if subHeight(p.leq.gtr) <= subHeight(p.leq.leq) {
			p.rotateRight()
		} else {
			p.leq.rotateLeft()
			p.rotateRight()
		}
	} else {
		if subHeight(p.gtr.leq) <= subHeight(p.gtr.gtr) {
			p.rotateLeft()
		} else {
			p.gtr.rotateRight()
			p.rotateLeft()
		}
	}
	return p.up
}

// rotateLeft - promote the greater child into p's position
//
// pure O(1) pointer re-linking; ordering is preserved by
// construction and only the two touched nodes need refreshing
func (p *node) rotateLeft() {
	q := p.gtr
	q.up = p.up
	if nil != p.up {
		if p.up.leq == p {
			p.up.leq = q
		} else {
			p.up.gtr = q
		}
	}
	p.gtr = q.leq
	if nil != p.gtr {
		p.gtr.up = p
	}
	q.leq = p
	p.up = q
	p.refresh()
	q.refresh()
}

// rotateRight - promote the lesser child into p's position
func (p *node) rotateRight() {
	q := p.leq
	q.up = p.up
	if nil != p.up {
		if p.up.leq == p {
			p.up.leq = q
		} else {
			p.up.gtr = q
		}
	}
	p.leq = q.gtr
	if nil != p.leq {
		p.leq.up = p
	}
	q.gtr = p
	p.up = q
	p.refresh()
	q.refresh()
}
