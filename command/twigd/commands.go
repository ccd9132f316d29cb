// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/twigproject/twig/automaton"
	"github.com/twigproject/twig/files"
	"github.com/twigproject/twig/store"
	"github.com/twigproject/twig/tweet"
)

// summary written to the --out directory after training
const summaryFile = "train-summary.txt"

// runTrain - learn a model from archive files and save it
//
// arguments: --out=DIRECTORY then --in=DIR, --rec=DIR or plain files
func runTrain(arguments []string) error {
	outDirectory, inputs, err := files.ReadArgs(arguments)
	if nil != err {
		return err
	}

	tlog := logger.New("train")
	matrix := automaton.NewWordMatrix()
	userMessages := map[string]uint32{}
	records := 0
	skipped := 0

	for _, input := range inputs {
		tlog.Infof("reading: %s", input)
		f, err := os.Open(input)
		if nil != err {
			return err
		}

		reader := tweet.NewReader(f)
	loop:
		for {
			record, err := reader.Next()
			if io.EOF == err {
				break loop
			}
			if nil != err {
				f.Close()
				return err
			}
			matrix.Learn(tweet.SplitPairs(record.Content))
			userMessages[record.User] += 1
			records += 1
		}
		skipped += reader.Skipped()
		f.Close()
	}
	tlog.Infof("records: %d  skipped: %d  users: %d  words: %d", records, skipped, len(userMessages), matrix.Words())

	histogram := map[uint32]uint64{}
	for _, count := range userMessages {
		histogram[count] += 1
	}

	if err := store.SaveMatrix(matrix); nil != err {
		return err
	}
	if err := store.SaveMessageCounts(histogram); nil != err {
		return err
	}

	summary, err := os.Create(filepath.Join(outDirectory, summaryFile))
	if nil != err {
		return err
	}
	defer summary.Close()
	fmt.Fprintf(summary, "inputs: %d\nrecords: %d\nskipped: %d\nusers: %d\nwords: %d\n",
		len(inputs), records, skipped, len(userMessages), matrix.Words())
	return nil
}

// runSimulate - load the model and write a simulated archive
func runSimulate(conf *Configuration) error {
	matrix, err := store.LoadMatrix()
	if nil != err {
		return err
	}
	messages, err := store.LoadMessageDistribution()
	if nil != err {
		return err
	}

	slog := logger.New("simulate")
	a := automaton.New(matrix, messages, conf.Simulation.MaxWords, slog)

	output, err := os.Create(conf.Simulation.Output)
	if nil != err {
		return err
	}
	defer output.Close()
	buffered := bufio.NewWriter(output)

	start := time.Now().UTC().Truncate(24 * time.Hour)
	emitted := 0
	err = a.Simulate(conf.Simulation.Users, conf.Simulation.Days, conf.Simulation.Seed, start,
		func(r tweet.Record) error {
			emitted += 1
			_, err := buffered.WriteString(r.Block())
			return err
		})
	if nil != err {
		return err
	}
	slog.Infof("emitted: %d messages to: %s", emitted, conf.Simulation.Output)
	return buffered.Flush()
}
