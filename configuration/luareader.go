// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/ledgerd/fault"
)

// ParseConfigurationFile - run a Lua file and map the table it
// returns onto config
//
// the script can read its own name from arg[0]
func ParseConfigurationFile(fileName string, config interface{}) error {
	return run(config, func(L *lua.LState) error {
		arg := &lua.LTable{}
		arg.Insert(0, lua.LString(fileName))
		L.SetGlobal("arg", arg)
		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - as ParseConfigurationFile but from Lua source text
func ParseConfigurationString(source string, config interface{}) error {
	return run(config, func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func run(config interface{}, execute func(*lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	if err := execute(L); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrInvalidConfiguration
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
