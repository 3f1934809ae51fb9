// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/osmkit/osmkitd/configuration"
	"github.com/osmkit/osmkitd/fault"
)

const configurationText = `
local M = {}

M.data_directory = "."

M.database = {
    name = "test.leveldb",
}

M.logging = {
    size = 20480,
    count = 5,
    console = true,
    levels = {
        main = "debug",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("temp directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "osmkit.conf")
	err = ioutil.WriteFile(fileName, []byte(configurationText), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	options, err := configuration.GetConfiguration(fileName)
	if nil != err {
		t.Fatalf("configuration error: %s", err)
	}

	if "test.leveldb" != filepath.Base(options.DatabasePath()) {
		t.Errorf("database: %q  expected base: test.leveldb", options.DatabasePath())
	}
	if !filepath.IsAbs(options.Database.Directory) {
		t.Errorf("database directory is not absolute: %q", options.Database.Directory)
	}
	if !filepath.IsAbs(options.Logging.Directory) {
		t.Errorf("log directory is not absolute: %q", options.Logging.Directory)
	}

	// values from the file
	if 20480 != options.Logging.Size {
		t.Errorf("log size: %d  expected: 20480", options.Logging.Size)
	}
	if 5 != options.Logging.Count {
		t.Errorf("log count: %d  expected: 5", options.Logging.Count)
	}
	if !options.Logging.Console {
		t.Errorf("console logging not enabled")
	}
	if "debug" != options.Logging.Levels["main"] {
		t.Errorf("main log level: %q  expected: debug", options.Logging.Levels["main"])
	}

	// directories were created
	if _, err := os.Stat(options.Database.Directory); nil != err {
		t.Errorf("database directory missing: %s", err)
	}
	if _, err := os.Stat(options.Logging.Directory); nil != err {
		t.Errorf("log directory missing: %s", err)
	}
}

func TestGetConfigurationRejectsPathName(t *testing.T) {

	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("temp directory error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "osmkit.conf")
	text := `return { data_directory = ".", database = { name = "sub/dir.leveldb" } }`
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	_, err = configuration.GetConfiguration(fileName)
	if nil == err {
		t.Fatalf("path name accepted as database name")
	}
}

func TestGetConfigurationRejectsEmptyFileName(t *testing.T) {

	_, err := configuration.GetConfiguration("")
	if fault.ErrRequiredConfigurationFile != err {
		t.Fatalf("expected: %v  actual: %v", fault.ErrRequiredConfigurationFile, err)
	}
}
