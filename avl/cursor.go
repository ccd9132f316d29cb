// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Cursor - lazy pre-order traversal of a tree
//
// the cursor holds a buffer of one node per depth level, sized to the
// tree height at creation, so a full traversal needs O(height) =
// O(log n) auxiliary space however many items the tree holds.  A
// cursor is single use and not restartable.  Structural mutation of
// the tree while a cursor is live leaves the cursor undefined; there
// is no concurrent-modification detection.
type Cursor struct {
	path  []*node // node per depth, position 0 is the root
	depth int     // index of the node to yield next, -1 when done
}

// NewCursor - start a pre-order traversal at the root
func (tree *Tree) NewCursor() *Cursor {
	cursor := &Cursor{
		path:  make([]*node, tree.Height()),
		depth: -1,
	}
	if nil != tree.root {
		cursor.depth = 0
		cursor.path[0] = tree.root
	}
	return cursor
}

// HasNext - true while the traversal has items left
func (cursor *Cursor) HasNext() bool {
	return cursor.depth > -1
}

// Next - yield the next item in pre-order, false when exhausted
func (cursor *Cursor) Next() (Item, bool) {
	p := cursor.nextNode()
	if nil == p {
		return nil, false
	}
	return p.item, true
}

// internal: yield the next node and advance
func (cursor *Cursor) nextNode() *node {
	if cursor.depth < 0 {
		return nil
	}
	p := cursor.path[cursor.depth]
	cursor.advance()
	return p
}

// advance - locate the next node to yield
//
// a loop standing in for the natural recursion: descend one level and
// pick the first untried child of the node above; if that level
// already yielded the lesser child switch to the greater one; with no
// candidate left back up two levels and retry.  Stale buffer entries
// from earlier excursions are recognised by not being a child of the
// node above them.  Backing up past the root ends the traversal.
func (cursor *Cursor) advance() {
	for cursor.depth >= 0 {
		cursor.depth += 1

		if cursor.depth == len(cursor.path) {
			cursor.depth -= 2
			continue
		}

		parent := cursor.path[cursor.depth-1]
		if nil == parent.leq && nil == parent.gtr {
			cursor.depth -= 2
			continue
		}

		visited := cursor.path[cursor.depth]
		if nil == visited || (visited != parent.leq && visited != parent.gtr) {
			next := parent.leq
			if nil == next {
				next = parent.gtr
			}
			cursor.path[cursor.depth] = next
			return
		}
		if visited == parent.leq && nil != parent.gtr {
			cursor.path[cursor.depth] = parent.gtr
			return
		}

		cursor.depth -= 2
	}
}
