// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Item - all stored elements must implement this interface
//
// Compare is the total order used to place and locate items, Equal is
// plain value equality.  The two may disagree: items that tie under
// Compare need not be Equal and the tree keeps both operations
// separate throughout.
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
	Equal(interface{}) bool  // for exact matching of items
}
