// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/twigproject/twig/avl"
	"github.com/twigproject/twig/fault"
)

// plain integer item: ordering and equality agree
type intItem int

func (n intItem) Compare(x interface{}) int {
	q := x.(intItem)
	switch {
	case n < q:
		return -1
	case n > q:
		return +1
	default:
		return 0
	}
}

func (n intItem) Equal(x interface{}) bool {
	q, ok := x.(intItem)
	return ok && n == q
}

func (n intItem) String() string {
	return fmt.Sprintf("%d", int(n))
}

// tagged item: ordered by key only, equal by key and tag, so tied
// items are not necessarily equal
type taggedItem struct {
	key int
	tag string
}

func (p taggedItem) Compare(x interface{}) int {
	q := x.(taggedItem)
	switch {
	case p.key < q.key:
		return -1
	case p.key > q.key:
		return +1
	default:
		return 0
	}
}

func (p taggedItem) Equal(x interface{}) bool {
	q, ok := x.(taggedItem)
	return ok && p.key == q.key && p.tag == q.tag
}

func (p taggedItem) String() string {
	return fmt.Sprintf("%d/%s", p.key, p.tag)
}

func addInts(t *testing.T, tree *avl.Tree, values []int) {
	t.Helper()
	for _, v := range values {
		if err := tree.Add(intItem(v)); nil != err {
			t.Fatalf("add: %d  error: %s", v, err)
		}
	}
}

func intValues(t *testing.T, tree *avl.Tree) []int {
	t.Helper()
	items := tree.Items()
	values := make([]int, len(items))
	for i, item := range items {
		values[i] = int(item.(intItem))
	}
	return values
}

func TestEmpty(t *testing.T) {
	tree := avl.New()
	if !tree.IsEmpty() {
		t.Error("new tree is not empty")
	}
	if 0 != tree.Count() {
		t.Errorf("new tree count: %d", tree.Count())
	}
	if 0 != tree.Height() {
		t.Errorf("new tree height: %d", tree.Height())
	}
	if tree.Contains(intItem(1)) {
		t.Error("empty tree contains an item")
	}
	if tree.Remove(intItem(1)) {
		t.Error("empty tree removed an item")
	}
	if _, ok := tree.Greatest(); ok {
		t.Error("empty tree has a greatest item")
	}
	if _, ok := tree.FindGreater(intItem(0)); ok {
		t.Error("empty tree has a greater item")
	}
}

func TestNilItem(t *testing.T) {
	tree := avl.New()
	if err := tree.Add(nil); fault.ErrNilItem != err {
		t.Errorf("add nil returned: %v  expected: %v", err, fault.ErrNilItem)
	}
	if tree.Contains(nil) {
		t.Error("tree contains nil")
	}
	if tree.Remove(nil) {
		t.Error("tree removed nil")
	}
}

// right-right heavy insertion must lift the middle key to the root
func TestRotateRightRight(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{10, 20, 30})
	checkShape(t, tree, []int{20, 10, 30}, 2)
}

// right-left case
func TestRotateRightLeft(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{30, 10, 20})
	checkShape(t, tree, []int{20, 10, 30}, 2)
}

// left-left case
func TestRotateLeftLeft(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{30, 20, 10})
	checkShape(t, tree, []int{20, 10, 30}, 2)
}

// left-right case
func TestRotateLeftRight(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{10, 30, 20})
	checkShape(t, tree, []int{20, 10, 30}, 2)
}

// pre-order materialisation starts at the root, so the expected
// pre-order fixes the shape
func checkShape(t *testing.T, tree *avl.Tree, preOrder []int, height int) {
	t.Helper()
	if !tree.CheckUp() {
		tree.Print()
		t.Fatal("inconsistent tree")
	}
	if height != tree.Height() {
		t.Errorf("height: %d  expected: %d", tree.Height(), height)
	}
	actual := intValues(t, tree)
	if len(actual) != len(preOrder) {
		t.Fatalf("pre-order: %v  expected: %v", actual, preOrder)
	}
	for i, v := range preOrder {
		if actual[i] != v {
			t.Fatalf("pre-order: %v  expected: %v", actual, preOrder)
		}
	}
}

func TestFindGreater(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{5, 10, 15})

	item, ok := tree.FindGreater(intItem(7))
	if !ok || intItem(10) != item.(intItem) {
		t.Errorf("find greater 7: %v, %v  expected: 10, true", item, ok)
	}

	item, ok = tree.FindGreater(intItem(2))
	if !ok || intItem(5) != item.(intItem) {
		t.Errorf("find greater 2: %v, %v  expected: 5, true", item, ok)
	}

	item, ok = tree.FindGreater(intItem(10))
	if !ok || intItem(15) != item.(intItem) {
		t.Errorf("find greater 10: %v, %v  expected: 15, true", item, ok)
	}

	// no strictly greater element: an explicit miss, never an
	// arbitrary fallback
	if item, ok = tree.FindGreater(intItem(15)); ok {
		t.Errorf("find greater 15 returned: %v", item)
	}
	if item, ok = tree.FindGreater(intItem(99)); ok {
		t.Errorf("find greater 99 returned: %v", item)
	}

	// queries are idempotent
	for i := 0; i < 3; i += 1 {
		item, ok = tree.FindGreater(intItem(7))
		if !ok || intItem(10) != item.(intItem) {
			t.Errorf("find greater 7 repeat %d: %v, %v", i, item, ok)
		}
	}
}

func TestGreatest(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{8, 3, 12, 1, 9})

	item, ok := tree.Greatest()
	if !ok || intItem(12) != item.(intItem) {
		t.Errorf("greatest: %v, %v  expected: 12, true", item, ok)
	}

	tree.Remove(intItem(12))
	item, ok = tree.Greatest()
	if !ok || intItem(9) != item.(intItem) {
		t.Errorf("greatest: %v, %v  expected: 9, true", item, ok)
	}
}

func TestRoundTrip(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{50, 25, 75})

	n := tree.Count()
	if err := tree.Add(intItem(60)); nil != err {
		t.Fatalf("add error: %s", err)
	}
	if !tree.Contains(intItem(60)) {
		t.Error("added item not found")
	}
	if !tree.Remove(intItem(60)) {
		t.Error("added item not removed")
	}
	if tree.Contains(intItem(60)) {
		t.Error("removed item still found")
	}
	if n != tree.Count() {
		t.Errorf("count: %d  expected: %d", tree.Count(), n)
	}
	if !tree.CheckUp() {
		t.Fatal("inconsistent tree")
	}
}

// duplicate keys are kept: the tree is a multiset
func TestDuplicateKeys(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{7, 3, 11})

	n := tree.Count()
	addInts(t, tree, []int{7, 7})
	if n+2 != tree.Count() {
		t.Errorf("count after duplicates: %d  expected: %d", tree.Count(), n+2)
	}
	if !tree.CheckUp() {
		t.Fatal("inconsistent tree")
	}

	// both instances are independently removable
	if !tree.Remove(intItem(7)) {
		t.Error("first duplicate not removed")
	}
	if !tree.Remove(intItem(7)) {
		t.Error("second duplicate not removed")
	}
	if !tree.Remove(intItem(7)) {
		t.Error("original not removed")
	}
	if tree.Contains(intItem(7)) {
		t.Error("all instances removed but key still present")
	}
	if n-1 != tree.Count() {
		t.Errorf("count after removals: %d  expected: %d", tree.Count(), n-1)
	}
}

// tied items that are not equal stay individually reachable through
// the tie-chain
func TestTieChain(t *testing.T) {
	tree := avl.New()
	items := []taggedItem{
		{5, "a"}, {2, "x"}, {9, "y"}, {5, "b"}, {5, "c"},
	}
	for _, item := range items {
		if err := tree.Add(item); nil != err {
			t.Fatalf("add: %v  error: %s", item, err)
		}
	}
	if !tree.CheckUp() {
		t.Fatal("inconsistent tree")
	}

	for _, item := range items {
		if !tree.Contains(item) {
			t.Errorf("missing item: %v", item)
		}
	}
	if tree.Contains(taggedItem{5, "z"}) {
		t.Error("found item that was never added")
	}

	// removing one tied item leaves the others
	if !tree.Remove(taggedItem{5, "b"}) {
		t.Error("tied item not removed")
	}
	if tree.Contains(taggedItem{5, "b"}) {
		t.Error("removed tied item still present")
	}
	if !tree.Contains(taggedItem{5, "a"}) || !tree.Contains(taggedItem{5, "c"}) {
		t.Error("other tied items lost")
	}
	if !tree.CheckUp() {
		t.Fatal("inconsistent tree")
	}
}

// equality that the ordering cannot reach needs the linear scan
func TestLinearOperations(t *testing.T) {
	tree := avl.New()
	tree.Add(taggedItem{1, "x"})
	tree.Add(taggedItem{2, "y"})
	tree.Add(taggedItem{3, "z"})

	// ordered lookup descends by key and misses
	if tree.Contains(taggedItem{9, "y"}) {
		t.Error("ordered lookup found a mis-keyed item")
	}
	// the linear scan only uses Equal, so with an equality that
	// ignores the key it still finds the item
	if !tree.ContainsValue(tagOnly{"y"}) {
		t.Error("linear lookup missed the item")
	}
	if tree.ContainsValue(tagOnly{"q"}) {
		t.Error("linear lookup found an absent item")
	}

	if !tree.RemoveValue(tagOnly{"y"}) {
		t.Error("linear removal missed the item")
	}
	if tree.ContainsValue(tagOnly{"y"}) {
		t.Error("linearly removed item still present")
	}
	if 2 != tree.Count() {
		t.Errorf("count: %d  expected: 2", tree.Count())
	}
	if !tree.CheckUp() {
		t.Fatal("inconsistent tree")
	}
}

// query item matching any taggedItem with the same tag
type tagOnly struct {
	tag string
}

func (p tagOnly) Compare(x interface{}) int {
	return 0 // ordering is useless for this query
}

func (p tagOnly) Equal(x interface{}) bool {
	q, ok := x.(taggedItem)
	return ok && p.tag == q.tag
}

// spec scenario: removing a node with two children keeps the balance
// bound and the remaining values
func TestRemoveTwoChildren(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{5, 3, 8, 1, 4, 7, 9, 2, 6})

	if !tree.Remove(intItem(5)) {
		t.Fatal("remove 5 failed")
	}
	if !tree.CheckUp() {
		tree.Print()
		t.Fatal("inconsistent tree after removal")
	}
	if 8 != tree.Count() {
		t.Errorf("count: %d  expected: 8", tree.Count())
	}

	values := intValues(t, tree)
	sort.Ints(values)
	expected := []int{1, 2, 3, 4, 6, 7, 8, 9}
	for i, v := range expected {
		if values[i] != v {
			t.Fatalf("values: %v  expected: %v", values, expected)
		}
	}
}

// ascending insertion is the classic worst case; the AVL height
// bound must still hold
func TestHeightBound(t *testing.T) {
	tree := avl.New()
	for n := 1; n <= 1000; n += 1 {
		if err := tree.Add(intItem(n)); nil != err {
			t.Fatalf("add: %d  error: %s", n, err)
		}
		bound := int(math.Ceil(1.44 * math.Log2(float64(n+2))))
		if tree.Height() > bound {
			t.Fatalf("n: %d  height: %d  exceeds bound: %d", n, tree.Height(), bound)
		}
	}
	if !tree.CheckUp() {
		t.Fatal("inconsistent tree")
	}
	if 1000 != tree.Count() {
		t.Errorf("count: %d  expected: 1000", tree.Count())
	}
}

// random insert/remove churn with full invariant checks
func TestRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewSource(20091231))
	tree := avl.New()
	reference := map[int]int{} // value → multiplicity

	for i := 0; i < 2000; i += 1 {
		v := rnd.Intn(500)
		if rnd.Intn(3) > 0 {
			if err := tree.Add(intItem(v)); nil != err {
				t.Fatalf("add: %d  error: %s", v, err)
			}
			reference[v] += 1
		} else if tree.Remove(intItem(v)) {
			if reference[v] <= 0 {
				t.Fatalf("removed item not in reference: %d", v)
			}
			reference[v] -= 1
		} else if reference[v] != 0 {
			t.Fatalf("remove missed a present item: %d", v)
		}

		if i%100 == 0 && !tree.CheckUp() {
			t.Fatalf("inconsistent tree at step %d", i)
		}
	}

	if !tree.CheckUp() {
		t.Fatal("inconsistent tree at end")
	}

	total := 0
	for _, n := range reference {
		total += n
	}
	if total != tree.Count() {
		t.Fatalf("count: %d  expected: %d", tree.Count(), total)
	}

	// full traversal yields exactly the reference multiset and the
	// sorted traversal is non-decreasing by construction
	actual := map[int]int{}
	values := intValues(t, tree)
	if len(values) != tree.Count() {
		t.Fatalf("traversal yielded %d values  count: %d", len(values), tree.Count())
	}
	for _, v := range values {
		actual[v] += 1
	}
	for v, n := range reference {
		if actual[v] != n {
			t.Fatalf("value %d: multiplicity %d  expected: %d", v, actual[v], n)
		}
	}
}

func TestClear(t *testing.T) {
	tree := avl.New()
	addInts(t, tree, []int{4, 2, 6, 1, 3})

	tree.Clear()
	if !tree.IsEmpty() || 0 != tree.Count() || 0 != tree.Height() {
		t.Error("tree not empty after clear")
	}
	if cursor := tree.NewCursor(); cursor.HasNext() {
		t.Error("cursor on cleared tree has items")
	}

	// the tree stays usable
	addInts(t, tree, []int{10})
	if 1 != tree.Count() || !tree.Contains(intItem(10)) {
		t.Error("tree unusable after clear")
	}
}
