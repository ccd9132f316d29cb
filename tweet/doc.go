// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tweet - parsing of archived twitter7 text records
//
// A twitter7 archive is a stream of three line blocks:
//
//	T	2009-06-01 21:43:59
//	U	http://twitter.com/burtonator
//	W	some message content …
//
// The parser turns a block into a Record and the splitter breaks a
// message into predecessor/successor word pairs for training the
// word matrix.
package tweet
