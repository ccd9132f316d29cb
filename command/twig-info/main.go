// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// inspect a trained model database from the command line
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli"

	"github.com/twigproject/twig/avl"
	"github.com/twigproject/twig/store"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "twig-info"
	app.Usage = "inspect a trained model database"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: "*model database `DIRECTORY`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "words",
			Usage: "most frequent word transitions",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of transitions to list `N`",
				},
			},
			Action: runWords,
		},
		{
			Name:   "messages",
			Usage:  "messages-per-user histogram",
			Action: runMessages,
		},
		{
			Name:   "version",
			Usage:  "display this program version",
			Action: runVersion,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(os.Stderr, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func openStore(c *cli.Context) error {
	database := c.GlobalString("database")
	if "" == database {
		return fmt.Errorf("database is required")
	}
	return store.Initialise(database)
}

// transition - one word pair ordered by its frequency
//
// predecessor and successor break count ties so the order is total
type transition struct {
	count       uint64
	predecessor string
	successor   string
}

func (t *transition) Compare(x interface{}) int {
	q := x.(*transition)
	switch {
	case t.count < q.count:
		return -1
	case t.count > q.count:
		return +1
	case t.predecessor < q.predecessor:
		return -1
	case t.predecessor > q.predecessor:
		return +1
	case t.successor < q.successor:
		return -1
	case t.successor > q.successor:
		return +1
	default:
		return 0
	}
}

func (t *transition) Equal(x interface{}) bool {
	q, ok := x.(*transition)
	return ok && 0 == t.Compare(q)
}

func runWords(c *cli.Context) error {
	if err := openStore(c); nil != err {
		return err
	}
	defer store.Finalise()

	matrix, err := store.LoadMatrix()
	if nil != err {
		return err
	}

	index := avl.New()
	matrix.Walk(func(predecessor string, successor string, count uint64) {
		_ = index.Add(&transition{
			count:       count,
			predecessor: predecessor,
			successor:   successor,
		})
	})

	n := c.Int("count")
	fmt.Fprintf(c.App.Writer, "transitions: %d\n", index.Count())
	for i := 0; i < n; i += 1 {
		greatest, ok := index.Greatest()
		if !ok {
			break
		}
		t := greatest.(*transition)
		fmt.Fprintf(c.App.Writer, "%8d  %q -> %q\n", t.count, t.predecessor, t.successor)
		if !index.Remove(t) {
			break
		}
	}
	return nil
}

func runMessages(c *cli.Context) error {
	if err := openStore(c); nil != err {
		return err
	}
	defer store.Finalise()

	histogram, err := store.LoadMessageCounts()
	if nil != err {
		return err
	}

	messages := make([]uint32, 0, len(histogram))
	totalUsers := uint64(0)
	for m, users := range histogram {
		messages = append(messages, m)
		totalUsers += users
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i] < messages[j] })

	fmt.Fprintf(c.App.Writer, "users: %d\n", totalUsers)
	for _, m := range messages {
		fmt.Fprintf(c.App.Writer, "%8d messages: %8d users\n", m, histogram[m])
	}
	return nil
}

func runVersion(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, version)
	return nil
}
