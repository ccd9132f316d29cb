// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Training and simulation program for the twig system
//
// This program learns a markov word model and a messages-per-user
// histogram from twitter7 archive files and later replays the model
// to produce a simulated archive of the same shape.
package main
