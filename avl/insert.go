// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/twigproject/twig/fault"
)

// Add - insert an item into the tree
//
// multiset semantics: duplicate keys are always accepted, a tie
// descends into the greater sub-tree so tied items stay in insertion
// order along the tie-chain.  A nil item is rejected.
func (tree *Tree) Add(item Item) error {
	if nil == item {
		return fault.ErrNilItem
	}
	if nil == tree.root {
		tree.root = newNode(item)
		tree.count = 1
		return nil
	}

	p := tree.root.descend(item, false)
	p.attach(newNode(item))
	tree.root = tree.root.top()
	tree.count += 1
	return nil
}

// AddAll - insert a batch of items
//
// stops at the first rejected item; items already inserted stay in
// the tree
func (tree *Tree) AddAll(items []Item) error {
	for _, item := range items {
		if err := tree.Add(item); nil != err {
			return err
		}
	}
	return nil
}
