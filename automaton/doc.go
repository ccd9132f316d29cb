// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package automaton - markov word chain and user simulation
//
// A WordMatrix accumulates predecessor to successor word counts from
// real messages and later replays the chain word by word to produce
// new messages.  An Automaton wraps the matrix together with a
// messages-per-user distribution and simulates a population of users
// over a period of days, emitting each simulated message through a
// callback.  All randomness flows from a single caller-supplied
// seed, so runs are reproducible.
package automaton
