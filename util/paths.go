// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - clean a path and, if it is relative, make it
// relative to directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true only for an existing regular file
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	return nil == err && info.Mode().IsRegular()
}

// IsPlainName - true if name has no directory part
func IsPlainName(name string) bool {
	if "" == name {
		return false
	}
	switch filepath.Dir(name) {
	case ".":
		return filepath.Base(name) == name
	default:
		return false
	}
}
