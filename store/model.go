// SPDX-License-Identifier: ISC
// Copyright (c) 2017-2021 twigproject
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/twigproject/twig/automaton"
	"github.com/twigproject/twig/distribution"
	"github.com/twigproject/twig/fault"
)

const (
	pairPrefix      = 'P'
	histogramPrefix = 'M'
	keySeparator    = 0x00
)

func pairKey(predecessor string, successor string) []byte {
	key := make([]byte, 0, 2+len(predecessor)+len(successor))
	key = append(key, pairPrefix)
	key = append(key, predecessor...)
	key = append(key, keySeparator)
	key = append(key, successor...)
	return key
}

func histogramKey(messages uint32) []byte {
	key := make([]byte, 5)
	key[0] = histogramPrefix
	binary.BigEndian.PutUint32(key[1:], messages)
	return key
}

// SaveMatrix - replace all stored word transitions with the matrix
func SaveMatrix(matrix *automaton.WordMatrix) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return fault.ErrNotInitialised
	}

	batch := new(leveldb.Batch)

	iter := poolData.db.NewIterator(util.BytesPrefix([]byte{pairPrefix}), nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}

	matrix.Walk(func(predecessor string, successor string, count uint64) {
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, count)
		batch.Put(pairKey(predecessor, successor), value)
	})

	return poolData.db.Write(batch, nil)
}

// LoadMatrix - rebuild a word matrix from stored transitions
func LoadMatrix() (*automaton.WordMatrix, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.ErrNotInitialised
	}

	matrix := automaton.NewWordMatrix()

	iter := poolData.db.NewIterator(util.BytesPrefix([]byte{pairPrefix}), nil)
	for iter.Next() {
		key := iter.Key()[1:]
		split := bytes.IndexByte(key, keySeparator)
		if split < 0 || 8 != len(iter.Value()) {
			iter.Release()
			return nil, fault.ErrRecordCorrupted
		}
		predecessor := string(key[:split])
		successor := string(key[split+1:])
		matrix.SetCount(predecessor, successor, binary.BigEndian.Uint64(iter.Value()))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, err
	}

	return matrix, nil
}

// SaveMessageCounts - replace the stored messages-per-user histogram
//
// the map is messages written by a user to the number of users that
// wrote exactly that many
func SaveMessageCounts(histogram map[uint32]uint64) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return fault.ErrNotInitialised
	}

	batch := new(leveldb.Batch)

	iter := poolData.db.NewIterator(util.BytesPrefix([]byte{histogramPrefix}), nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return err
	}

	for messages, users := range histogram {
		value := make([]byte, 8)
		binary.BigEndian.PutUint64(value, users)
		batch.Put(histogramKey(messages), value)
	}

	return poolData.db.Write(batch, nil)
}

// LoadMessageCounts - the stored messages-per-user histogram
func LoadMessageCounts() (map[uint32]uint64, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.ErrNotInitialised
	}

	histogram := map[uint32]uint64{}

	iter := poolData.db.NewIterator(util.BytesPrefix([]byte{histogramPrefix}), nil)
	for iter.Next() {
		if 5 != len(iter.Key()) || 8 != len(iter.Value()) {
			iter.Release()
			return nil, fault.ErrRecordCorrupted
		}
		messages := binary.BigEndian.Uint32(iter.Key()[1:])
		histogram[messages] = binary.BigEndian.Uint64(iter.Value())
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return nil, err
	}

	return histogram, nil
}

// LoadMessageDistribution - the histogram as a ready sampler
//
// the iterator yields keys in ascending order so the sampler is built
// deterministically
func LoadMessageDistribution() (*distribution.Discrete, error) {
	histogram, err := LoadMessageCounts()
	if nil != err {
		return nil, err
	}

	messages := make([]uint32, 0, len(histogram))
	for m := range histogram {
		messages = append(messages, m)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i] < messages[j] })

	d := distribution.NewDiscrete()
	for _, m := range messages {
		if err := d.AddWeight(m, histogram[m]); nil != err {
			return nil, err
		}
	}
	return d, nil
}
