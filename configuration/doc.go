// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua configuration file
//
// the file is executed by a full Lua interpreter and must finish with
// a return of a single table, the fields of the table are assigned
// to a structure using its gluamapper tags
//
// base Lua is available so a configuration can compute values or
// read the environment, e.g.
//
//	local home = os.getenv("HOME")
//	return {
//	    key_type = "integer",
//	    scripts = { home .. "/replays/rotations.avl" },
//	}
package configuration
