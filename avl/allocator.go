// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// a node in the tree
//
// leq and gtr are exclusively owned sub-trees, up is a non-owning
// back-reference used only for upward traversal and balance
// propagation
type node struct {
	leq     *node // lesser-or-equal sub-tree
	gtr     *node // strictly greater sub-tree
	up      *node // points to parent node
	item    Item  // the stored element
	height  int   // cached sub-tree height, leaf = 1
	balance int   // height(gtr) - height(leq)
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(item Item) *node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("avl: pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &node{
			item:    item,
			height:  1,
			balance: 0,
		}
	}
	p := pool
	pool = p.up
	p.item = item
	p.height = 1
	p.balance = 0
	p.leq = nil
	p.gtr = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(p *node) {
	m.Lock()
	p.up = pool // use as free list pointer

	p.leq = nil
	p.gtr = nil
	p.item = nil
	p.height = 0
	p.balance = 0
	freeNodes += 1

	pool = p
	m.Unlock()
}
