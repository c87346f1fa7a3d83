// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/address"
	"github.com/bitmark-inc/ledgerd/ledgerpath"
	"github.com/bitmark-inc/ledgerd/recordkey"
)

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey, err := checkHex(c.String("public-key"), ErrRequiredPublicKey)
	if nil != err {
		return err
	}

	a, err := account.AccountFromBytes(publicKey.Bytes())
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", a.Address())
	return nil
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := checkHex(c.String("data"), ErrRequiredData)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", address.Encode(data.Bytes()))
	return nil
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text := c.String("text")
	if "" == text {
		return ErrRequiredData
	}

	data, err := address.Decode(text)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%x\n", data)
	return nil
}

func runKey(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	path, err := checkPath(c.String("path"), ErrRequiredPath)
	if nil != err {
		return err
	}

	asset := c.String("asset")
	name := c.String("data")
	if ("" == asset) == ("" == name) {
		return ErrRequiredOneRecordType
	}

	var key recordkey.RecordKey
	if "" != asset {
		assetPath, err := ledgerpath.Parse(asset)
		if nil != err {
			return err
		}
		key = recordkey.NewAccountKey(path, assetPath)
	} else {
		key, err = recordkey.New(recordkey.Data, path, name)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key: %s\n", key)
	}
	fmt.Fprintf(m.w, "%s\n", key.ToBinary())
	return nil
}
