// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tweet

import (
	"regexp"
	"strings"
)

// Pair - two words succeeding each other inside one sentence
//
// an empty predecessor marks the sentence start, an empty successor
// the sentence end
type Pair struct {
	Predecessor string
	Successor   string
}

// sentence structure of a message
var (
	unwantedSequences  = regexp.MustCompile(`[^a-zA-Z0-9#'@ ,?!.-]+`)
	sentenceDelimiters = regexp.MustCompile(`[!?.]+`)
	wordDelimiters     = regexp.MustCompile(`[ ,-]+`)
)

// SplitPairs - break a message into word succession pairs
//
// words only succeed one another inside the same sentence; sentences
// are delimited by '.', '!' or '?' and words by space, comma or
// hyphen; anything else is stripped first
func SplitPairs(content string) []Pair {
	var pairs []Pair

	content = unwantedSequences.ReplaceAllString(content, "")
	for _, sentence := range sentenceDelimiters.Split(content, -1) {
		sentence = strings.TrimSpace(sentence)
		lastWord := ""
		for _, word := range wordDelimiters.Split(sentence, -1) {
			if "" == word {
				continue
			}
			pairs = append(pairs, Pair{Predecessor: lastWord, Successor: word})
			lastWord = word
		}
		if "" != lastWord {
			pairs = append(pairs, Pair{Predecessor: lastWord, Successor: ""})
		}
	}
	return pairs
}
