// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly missing sub-tree
func subHeight(p *node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// descend - shared search/insertion-point descent
//
// with lookup set the walk stops at the first node whose item is
// Equal to the query and returns nil if the walk runs off the tree;
// without lookup the walk returns the attachment leaf for the query.
// Ties under Compare always move to the greater sub-tree, so a chain
// of tied items is walked completely before giving up.
func (p *node) descend(item Item, lookup bool) *node {
	for q := p; ; {
		if lookup && q.item.Equal(item) {
			return q
		}
		next := q.gtr
		if q.item.Compare(item) > 0 {
			next = q.leq
		}
		if nil == next {
			if lookup {
				return nil
			}
			return q
		}
		q = next
	}
}

// top - walk up to the root of the tree containing p
func (p *node) top() *node {
	for nil != p.up {
		p = p.up
	}
	return p
}

// attach - link a parentless node (or sub-tree) below p on the side
// dictated by the ordering, then restore balance upwards
//
// descent guarantees the slot is free; an occupied slot means the
// tree is corrupt
func (p *node) attach(child *node) {
	if p.item.Compare(child.item) > 0 {
		if nil != p.leq {
			panic("avl: attach: lesser slot occupied")
		}
		p.leq = child
	} else {
		if nil != p.gtr {
			panic("avl: attach: greater slot occupied")
		}
		p.gtr = child
	}
	child.up = p
	propagate(p)
}

// refresh - recompute cached height and balance factor from the
// children's cached heights
func (p *node) refresh() {
	lh := subHeight(p.leq)
	gh := subHeight(p.gtr)
	if gh > lh {
		p.height = gh + 1
	} else {
		p.height = lh + 1
	}
	p.balance = gh - lh
}
