// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - verify the structural invariants of the whole tree
//
// checks parent pointers, the cached heights and balance factors
// against the recursive definition, the AVL bound, the ordering of
// every node against its children and the reachable node count
// against Count().  Recursion is fine here, this is a test/debug
// aid, not a production path.
func (tree *Tree) CheckUp() bool {
	n, _, ok := checkup(tree.root, nil)
	if !ok {
		return false
	}
	if n != tree.count {
		fmt.Printf("avl: count mismatch: reachable: %d  recorded: %d\n", n, tree.count)
		return false
	}
	return true
}

// internal: consistency checker, returns node count and height
func checkup(p *node, up *node) (int, int, bool) {
	if nil == p {
		return 0, 0, true
	}
	if p.up != up {
		fmt.Printf("avl: bad parent at node: %v\n", p.item)
		return 0, 0, false
	}
	if nil != p.leq && p.leq.item.Compare(p.item) > 0 {
		fmt.Printf("avl: order violation: %v > %v\n", p.leq.item, p.item)
		return 0, 0, false
	}
	if nil != p.gtr && p.item.Compare(p.gtr.item) > 0 {
		fmt.Printf("avl: order violation: %v > %v\n", p.item, p.gtr.item)
		return 0, 0, false
	}

	ln, lh, ok := checkup(p.leq, p)
	if !ok {
		return 0, 0, false
	}
	gn, gh, ok := checkup(p.gtr, p)
	if !ok {
		return 0, 0, false
	}

	height := lh + 1
	if gh > lh {
		height = gh + 1
	}
	if p.height != height {
		fmt.Printf("avl: stale height at node: %v  cached: %d  actual: %d\n", p.item, p.height, height)
		return 0, 0, false
	}
	balance := gh - lh
	if p.balance != balance {
		fmt.Printf("avl: stale balance at node: %v  cached: %d  actual: %d\n", p.item, p.balance, balance)
		return 0, 0, false
	}
	if balance < -1 || balance > 1 {
		fmt.Printf("avl: balance bound exceeded at node: %v  balance: %d\n", p.item, balance)
		return 0, 0, false
	}

	return ln + gn + 1, height, true
}
