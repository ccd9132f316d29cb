// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered index with parent pointers to
// allow iterative balance propagation and bounded-space traversal
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree is a multiset: an item whose ordering key ties with an
// already stored item is always placed into the greater sub-tree of
// the tied node, so duplicate keys are preserved in insertion order
// along a right-leaning tie-chain.
//
// Ordering and equality are independent operations on Item.  Two
// items may tie under Compare without being Equal and the tree never
// assumes one implies the other.  The ...Value operations exist for
// items whose equality cannot be resolved through the ordering at
// all; they scan the whole tree.
package avl
