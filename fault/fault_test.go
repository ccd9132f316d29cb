// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/twigproject/twig/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrRecordOne   = fault.RecordError("record one")
)

// test that the error classes stay distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrProcessOne, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, true},
		{fault.ErrNilItem, false, true, false, false, false},
		{fault.ErrAlreadyInitialised, true, false, false, false, false},
		{fault.ErrMessageDateTime, false, false, false, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrExists(item.err) != item.exists {
			t.Errorf("%d: exists mismatch for: %v", i, item.err)
		}
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid mismatch for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found mismatch for: %v", i, item.err)
		}
		if fault.IsErrProcess(item.err) != item.process {
			t.Errorf("%d: process mismatch for: %v", i, item.err)
		}
		if fault.IsErrRecord(item.err) != item.record {
			t.Errorf("%d: record mismatch for: %v", i, item.err)
		}
	}
}
