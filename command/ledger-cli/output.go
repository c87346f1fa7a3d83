// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
)

// write a reply to standard output
//
// byte strings render as hex, paths are not HTML escaped
func (m *metadata) output(reply interface{}) error {
	encoder := json.NewEncoder(m.w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reply)
}
