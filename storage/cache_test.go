// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache(t *testing.T) {
	c := newCache()

	_, found := c.Get("missing")
	assert.False(t, found, "empty cache")

	c.Set("key", []byte("value"))
	value, found := c.Get("key")
	assert.True(t, found, "entry not found")
	assert.Equal(t, []byte("value"), value, "wrong value")

	c.Set("key", []byte("other"))
	value, _ = c.Get("key")
	assert.Equal(t, []byte("other"), value, "entry not replaced")

	c.Flush()
	_, found = c.Get("key")
	assert.False(t, found, "entry survived flush")
}
