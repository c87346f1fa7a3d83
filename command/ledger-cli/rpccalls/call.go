// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
)

// call a ledgerd method, in verbose mode the request and a
// successful reply are traced to the client handle
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.trace(method, "request", arguments)
	if err := client.client.Call(method, arguments, reply); err != nil {
		return err
	}
	client.trace(method, "reply", reply)
	return nil
}

func (client *Client) trace(method string, direction string, message interface{}) {
	if !client.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s %s: %s\n", method, direction, err)
		return
	}
	fmt.Fprintf(client.handle, "%s %s:\n%s\n", method, direction, b)
}
