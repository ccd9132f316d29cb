// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package automaton

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/twigproject/twig/distribution"
	"github.com/twigproject/twig/fault"
	"github.com/twigproject/twig/tweet"
)

// Automaton - a trained model ready to simulate users
type Automaton struct {
	words    *WordMatrix
	messages *distribution.Discrete
	maxWords int
	log      *logger.L
}

// New - bind a word matrix and a messages-per-user distribution
//
// log may be nil for library use without an initialised logger
func New(words *WordMatrix, messages *distribution.Discrete, maxWords int, log *logger.L) *Automaton {
	return &Automaton{
		words:    words,
		messages: messages,
		maxWords: maxWords,
		log:      log,
	}
}

// Simulate - run a population of users over a number of days
//
// every user draws a message count from the messages-per-user
// distribution and the messages are spread uniformly over the
// simulated period; records are emitted in user order and a non-nil
// error from emit aborts the run
func (a *Automaton) Simulate(userCount int, days int, seed int64, start time.Time, emit func(tweet.Record) error) error {
	if nil == a.words || nil == a.messages || 0 == a.messages.Weight() {
		return fault.ErrEmptyDistribution
	}

	rnd := rand.New(rand.NewSource(seed))
	period := time.Duration(days) * 24 * time.Hour

	for u := 0; u < userCount; u += 1 {
		user := fmt.Sprintf("user%06d", u)
		n, err := a.messages.Sample(rnd)
		if nil != err {
			return err
		}
		messageCount := int(n.(uint32))

		for i := 0; i < messageCount; i += 1 {
			content, err := a.words.RandomMessage(rnd, a.maxWords)
			if nil != err {
				return err
			}
			when := start.Add(time.Duration(rnd.Int63n(int64(period))))
			err = emit(tweet.Record{
				Timestamp: when,
				User:      user,
				Content:   content,
			})
			if nil != err {
				return err
			}
		}

		if nil != a.log && 0 == (u+1)%1000 {
			a.log.Infof("simulated: %d/%d users", u+1, userCount)
		}
	}
	return nil
}
