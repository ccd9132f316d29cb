// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tweet

import (
	"bufio"
	"io"
	"strings"
)

// Reader - stream of Records from a twitter7 archive
//
// malformed blocks are skipped and counted rather than aborting the
// stream, since the archives routinely contain damaged entries
type Reader struct {
	scanner *bufio.Scanner
	skipped int
}

// NewReader - wrap an archive stream
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	return &Reader{
		scanner: scanner,
	}
}

// Skipped - number of malformed blocks skipped so far
func (r *Reader) Skipped() int {
	return r.skipped
}

// Next - the next well-formed Record, io.EOF at end of stream
func (r *Reader) Next() (*Record, error) {
	tLine := ""
	uLine := ""
	haveT := false
	haveU := false

	for r.scanner.Scan() {
		line := r.scanner.Text()
		switch {
		case strings.HasPrefix(line, "T\t"):
			if haveT || haveU {
				r.skipped += 1 // unterminated earlier block
			}
			tLine = line[2:]
			haveT = true
			haveU = false

		case strings.HasPrefix(line, "U\t"):
			if !haveT || haveU {
				r.skipped += 1
				haveT = false
				haveU = false
				continue
			}
			uLine = line[2:]
			haveU = true

		case strings.HasPrefix(line, "W\t"):
			if !haveT || !haveU {
				r.skipped += 1
				haveT = false
				haveU = false
				continue
			}
			haveT = false
			haveU = false
			record, err := ParseBlock(tLine, uLine, line[2:])
			if nil != err {
				r.skipped += 1
				continue
			}
			return record, nil

		default:
			// headers and blank separators
		}
	}
	if err := r.scanner.Err(); nil != err {
		return nil, err
	}
	if haveT || haveU {
		r.skipped += 1 // trailing incomplete block
	}
	return nil, io.EOF
}
