// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package replay - run scripted or randomly generated operations
// against an AVL tree
//
// Script format, one operation per line, blank lines and text after
// '#' are ignored:
//
//	insert KEY VALUE...   [=> ok|duplicate]
//	remove KEY            [=> VALUE|not-found]
//	find KEY              [=> VALUE|not-found]
//	contains KEY          [=> true|false]
//	trace KEY             [=> TRACE]
//	check                 [=> ok]
//	print
//	clear
//
// the optional "=> OUTCOME" suffix is compared with the actual outcome
// and a difference is reported as a mismatch.
package replay
