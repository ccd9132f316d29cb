// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package files - locating archive files and handling the shared
// --out/--in/--rec argument set of the pipeline commands
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/twigproject/twig/fault"
)

// List - all plain files below a directory
//
// with recursive set sub-directories are descended, otherwise only
// the directory itself is read
func List(dir string, recursive bool) ([]string, error) {
	var list []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if info.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		list = append(list, path)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return list, nil
}

// ReadArgs - split an argument list into the output directory and
// the set of input files
//
// the first argument must be --out=DIRECTORY; the remaining
// arguments are expanded into input files
func ReadArgs(args []string) (string, []string, error) {
	if len(args) < 2 {
		return "", nil, fault.ErrTooFewArguments
	}

	if !strings.HasPrefix(args[0], "--out=") {
		return "", nil, fault.ErrRequiredOutDirectory
	}
	outDirectory := strings.TrimPrefix(args[0], "--out=")
	info, err := os.Stat(outDirectory)
	if nil != err || !info.IsDir() {
		return "", nil, fault.ErrNotOutDirectory
	}

	inputs, err := Expand(args[1:])
	if nil != err {
		return "", nil, err
	}
	return outDirectory, inputs, nil
}

// Expand - turn argument specs into a duplicate-free input file list
//
// each argument is --in=DIRECTORY for the files of one directory,
// --rec=DIRECTORY for a whole directory tree, or a plain file path
func Expand(args []string) ([]string, error) {
	seen := map[string]struct{}{}
	var inputs []string
	add := func(paths []string) {
		for _, path := range paths {
			if _, ok := seen[path]; !ok {
				seen[path] = struct{}{}
				inputs = append(inputs, path)
			}
		}
	}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--in="):
			list, err := List(strings.TrimPrefix(arg, "--in="), false)
			if nil != err {
				return nil, err
			}
			add(list)

		case strings.HasPrefix(arg, "--rec="):
			list, err := List(strings.TrimPrefix(arg, "--rec="), true)
			if nil != err {
				return nil, err
			}
			add(list)

		default:
			add([]string{arg})
		}
	}

	return inputs, nil
}
