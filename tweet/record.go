// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tweet

import (
	"net/url"
	"strings"
	"time"

	"github.com/twigproject/twig/fault"
)

// layout of the T line timestamp
const timestampLayout = "2006-01-02 15:04:05"

// only links into this authority identify an account
const twitterAuthority = "twitter.com"

// Record - one parsed twitter7 block
type Record struct {
	Timestamp time.Time // from the T line
	User      string    // account from the U line link
	Content   string    // trimmed W line
}

// ParseBlock - parse the three lines of a twitter7 block
//
// the U line must be a twitter.com link whose first path segment is
// the account name; a malformed line yields the matching record
// error and no Record
func ParseBlock(tLine string, uLine string, wLine string) (*Record, error) {

	timestamp, err := time.Parse(timestampLayout, strings.TrimSpace(tLine))
	if nil != err {
		return nil, fault.ErrMessageDateTime
	}

	link, err := url.Parse(strings.TrimSpace(uLine))
	if nil != err {
		return nil, fault.ErrMessageLink
	}
	if !strings.EqualFold(link.Host, twitterAuthority) {
		return nil, fault.ErrNotTwitterLink
	}

	user := ""
	for _, part := range strings.Split(link.Path, "/") {
		if "" != part {
			user = part
			break
		}
	}
	if "" == user {
		return nil, fault.ErrNoTwitterAccount
	}

	return &Record{
		Timestamp: timestamp,
		User:      user,
		Content:   strings.TrimSpace(wLine),
	}, nil
}

// Block - render the record back into a twitter7 block
//
// the result parses back to an equal record (at second granularity)
func (r Record) Block() string {
	return "T\t" + r.Timestamp.Format(timestampLayout) +
		"\nU\thttp://" + twitterAuthority + "/" + r.User +
		"\nW\t" + r.Content + "\n\n"
}
