// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package distribution - empirical discrete distributions
//
// Frequency counts become cumulative thresholds stored in an ordered
// avl index; sampling draws a uniform variate below the total weight
// and resolves it to a value with an ordered successor query.  The
// index is used strictly as a black-box ordered container.
package distribution

import (
	"fmt"
	"math/rand"

	"github.com/twigproject/twig/avl"
	"github.com/twigproject/twig/fault"
)

// threshold - cumulative upper bound of one value's weight band
//
// a variate u selects the value of the least threshold with
// upper > u, i.e. the band (upper-weight, upper] shifted to
// zero-based [lower, upper)
type threshold struct {
	upper uint64
	value interface{}
}

// Compare - order thresholds by their cumulative bound
func (t *threshold) Compare(x interface{}) int {
	q := x.(*threshold)
	switch {
	case t.upper < q.upper:
		return -1
	case t.upper > q.upper:
		return +1
	default:
		return 0
	}
}

// Equal - same bound and same value
func (t *threshold) Equal(x interface{}) bool {
	q, ok := x.(*threshold)
	return ok && t.upper == q.upper && t.value == q.value
}

func (t *threshold) String() string {
	return fmt.Sprintf("%v<%d", t.value, t.upper)
}

// Discrete - an empirical discrete distribution under construction
// or in use
type Discrete struct {
	index *avl.Tree
	total uint64
}

// NewDiscrete - create an empty distribution
func NewDiscrete() *Discrete {
	return &Discrete{
		index: avl.New(),
	}
}

// AddWeight - account a value with a frequency weight
//
// zero weights are ignored; the same value may be accounted several
// times and simply occupies several bands
func (d *Discrete) AddWeight(value interface{}, weight uint64) error {
	if 0 == weight {
		return nil
	}
	d.total += weight
	return d.index.Add(&threshold{
		upper: d.total,
		value: value,
	})
}

// Weight - total accounted weight
func (d *Discrete) Weight() uint64 {
	return d.total
}

// Bands - number of weight bands in the distribution
func (d *Discrete) Bands() int {
	return d.index.Count()
}

// Sample - draw one value
//
// the variate is uniform in [0, Weight()) and the strictly greater
// threshold always exists, so a non-empty distribution cannot fail
func (d *Discrete) Sample(rnd *rand.Rand) (interface{}, error) {
	if 0 == d.total {
		return nil, fault.ErrEmptyDistribution
	}

	u := uint64(rnd.Int63n(int64(d.total)))
	item, ok := d.index.FindGreater(&threshold{upper: u})
	if !ok {
		// unreachable while the index holds the full threshold chain
		return nil, fault.ErrEmptyDistribution
	}
	return item.(*threshold).value, nil
}
