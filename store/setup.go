// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/twigproject/twig/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	db *leveldb.DB
}

// Initialise - open up the database connection
//
// an empty database is tagged with the current version; any other
// version is refused
func Initialise(database string) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	db, err := leveldb.OpenFile(database, nil)
	if nil != err {
		return err
	}

	versionValue, err := db.Get(versionKey, nil)
	switch err {
	case leveldb.ErrNotFound:
		// database was empty so tag as current version
		buffer := make([]byte, 4)
		binary.BigEndian.PutUint32(buffer, currentDBVersion)
		err = db.Put(versionKey, buffer, nil)
		if nil != err {
			db.Close()
			return err
		}
	case nil:
		if 4 != len(versionValue) || currentDBVersion != binary.BigEndian.Uint32(versionValue) {
			db.Close()
			return fault.ErrWrongDatabaseVersion
		}
	default:
		db.Close()
		return err
	}

	poolData.db = db
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.db {
		return
	}
	poolData.db.Close()
	poolData.db = nil
}
