// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2020 OSM Kit Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read the configuration file
//
// the configuration file is actually a Lua script so that settings
// can be computed, its last expression is the configuration table
package configuration
