// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/mutation"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	packed, err := checkHex(c.String("mutation"), ErrRequiredMutation)
	if nil != err {
		return err
	}

	// refuse to sign anything that is not a mutation
	if _, err := mutation.UnpackMutation(packed.Bytes()); nil != err {
		return err
	}

	keys, err := checkPrivateKeys([]string{c.String("private-key")})
	if nil != err {
		return err
	}

	evidence, err := signMutation(packed.Bytes(), keys)
	if nil != err {
		return err
	}

	return m.output(evidence[0])
}
