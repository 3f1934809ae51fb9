// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/osmkit/osmkitd/entityrecord"
	"github.com/osmkit/osmkitd/storage"
)

func checkEntityType(t string) (entityrecord.TagType, error) {
	if "" == t {
		return entityrecord.NullTag, fmt.Errorf("missing entity type argument")
	}
	return entityrecord.FromString(t)
}

func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", fmt.Errorf("missing file argument")
	}
	info, err := os.Stat(fileName)
	if nil != err {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("not a file: %q", fileName)
	}
	return fileName, nil
}

// open logging and the entity database, returning a single
// function to shut both down in the right order
func initialiseDatabase(m *metadata, readOnly bool) (func(), error) {

	err := logger.Initialise(m.config.LoggerConfiguration())
	if nil != err {
		return nil, err
	}

	err = storage.Initialise(m.config.DatabasePath(), readOnly)
	if nil != err {
		logger.Finalise()
		return nil, err
	}

	return func() {
		storage.Finalise()
		logger.Finalise()
	}, nil
}
