// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no items
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of items currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - cached height of the tree, zero when empty
func (tree *Tree) Height() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.height
}

// Clear - release the whole tree
//
// dropping the root releases ownership of every node beneath it; the
// nodes are reclaimed by the runtime, not returned to the pool
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
