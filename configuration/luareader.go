// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"github.com/pkg/errors"
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avlmap/fault"
)

// TagName - structure tag used to name configuration fields
const TagName = "gluamapper"

// ParseConfigurationFile - execute a Lua file and assign the table it
// returns to a configuration structure
//
// fields absent from the table keep their existing values so config
// should be filled with defaults first
func ParseConfigurationFile(fileName string, config interface{}) error {
	if _, err := os.Stat(fileName); nil != err {
		return errors.Wrapf(fault.ErrNotFoundConfigFile, "file: %q", fileName)
	}

	return parse(fileName, config, func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - as ParseConfigurationFile for Lua source
// held in memory
func ParseConfigurationString(source string, config interface{}) error {
	return parse("", config, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

// run the chunk in a fresh interpreter and map its result
func parse(fileName string, config interface{}, execute func(*lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] is the configuration file, empty for a string
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := execute(L); nil != err {
		return errors.Wrapf(fault.ErrConfigurationFile, "lua: %s", err)
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return errors.Wrapf(fault.ErrConfigurationFile, "file: %q did not return a table", fileName)
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: TagName,
		},
	}
	if err := mapper.Map(table, config); nil != err {
		return errors.Wrapf(fault.ErrConfigurationFile, "mapping: %s", err)
	}
	return nil
}
