// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package automaton

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/twigproject/twig/distribution"
	"github.com/twigproject/twig/fault"
	"github.com/twigproject/twig/tweet"
)

// WordMatrix - predecessor to successor word transition counts
//
// the empty word "" marks both the start and the end of a message
type WordMatrix struct {
	counts   map[string]map[string]uint64
	samplers map[string]*distribution.Discrete
}

// NewWordMatrix - create an empty matrix
func NewWordMatrix() *WordMatrix {
	return &WordMatrix{
		counts: map[string]map[string]uint64{},
	}
}

// Learn - account the transitions of one message
func (m *WordMatrix) Learn(pairs []tweet.Pair) {
	for _, pair := range pairs {
		m.SetCount(pair.Predecessor, pair.Successor, m.Count(pair.Predecessor, pair.Successor)+1)
	}
}

// SetCount - force one transition count, replacing any learned value
func (m *WordMatrix) SetCount(predecessor string, successor string, count uint64) {
	row, ok := m.counts[predecessor]
	if !ok {
		row = map[string]uint64{}
		m.counts[predecessor] = row
	}
	row[successor] = count
	m.samplers = nil // rebuilt on next draw
}

// Count - one transition count, zero when never seen
func (m *WordMatrix) Count(predecessor string, successor string) uint64 {
	return m.counts[predecessor][successor]
}

// Words - number of distinct predecessor words
func (m *WordMatrix) Words() int {
	return len(m.counts)
}

// Walk - call fn for every transition in deterministic order
func (m *WordMatrix) Walk(fn func(predecessor string, successor string, count uint64)) {
	for _, predecessor := range sortedKeys(m.counts) {
		row := m.counts[predecessor]
		successors := make([]string, 0, len(row))
		for successor := range row {
			successors = append(successors, successor)
		}
		sort.Strings(successors)
		for _, successor := range successors {
			fn(predecessor, successor, row[successor])
		}
	}
}

// RandomMessage - replay the chain from the start marker
//
// the walk ends at the end marker or after maxWords words, whichever
// comes first; an unlearned predecessor also ends the message early
func (m *WordMatrix) RandomMessage(rnd *rand.Rand, maxWords int) (string, error) {
	if 0 == len(m.counts) {
		return "", fault.ErrEmptyDistribution
	}
	if nil == m.samplers {
		m.buildSamplers()
	}

	var words []string
	current := ""
	for len(words) < maxWords {
		sampler, ok := m.samplers[current]
		if !ok {
			break
		}
		next, err := sampler.Sample(rnd)
		if nil != err {
			return "", err
		}
		current = next.(string)
		if "" == current {
			break
		}
		words = append(words, current)
	}
	return strings.Join(words, " "), nil
}

// successor keys are added in sorted order so that equal seeds give
// equal messages regardless of map iteration
func (m *WordMatrix) buildSamplers() {
	m.samplers = make(map[string]*distribution.Discrete, len(m.counts))
	for _, predecessor := range sortedKeys(m.counts) {
		row := m.counts[predecessor]
		successors := make([]string, 0, len(row))
		for successor := range row {
			successors = append(successors, successor)
		}
		sort.Strings(successors)

		sampler := distribution.NewDiscrete()
		for _, successor := range successors {
			_ = sampler.AddWeight(successor, row[successor])
		}
		m.samplers[predecessor] = sampler
	}
}

func sortedKeys(m map[string]map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
