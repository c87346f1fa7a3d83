// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/bytestring"
)

type keygenReply struct {
	PrivateKey *account.PrivateKey   `json:"private_key"`
	PublicKey  bytestring.ByteString `json:"public_key"`
	Address    string                `json:"address"`
}

func runKeygen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyType, err := checkKeyType(c.String("type"))
	if nil != err {
		return err
	}

	privateKey, err := account.NewPrivateKey(keyType)
	if nil != err {
		return err
	}

	a := privateKey.Account()
	return m.output(keygenReply{
		PrivateKey: privateKey,
		PublicKey:  bytestring.New(a.PublicKeyBytes()),
		Address:    a.Address(),
	})
}
