// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - persistent trained model
//
// A single LevelDB database holds the trained model between the train
// and simulate phases.  Records:
//
//	0x00 'V' 'E' 'R' 'S' 'I' 'O' 'N'          -> big endian uint32 version
//	'P' predecessor 0x00 successor            -> big endian uint64 count
//	'M' big endian uint32 messages-per-user   -> big endian uint64 users
//
// Word transition keys rely on the splitter never producing a NUL in
// a word, so predecessor and successor split unambiguously.
package store
