// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print() int {
	return printTree(tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree(p *node, prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.gtr {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(p.gtr, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.item
	}
	fmt.Printf("%v ^%v %+2d/%d\n", p.item, up, p.balance, p.height)
	if nil != p.leq {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.leq, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
