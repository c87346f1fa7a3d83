// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - recently read or committed values by database key
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Flush()
}

const (
	cacheExpiration      = 2 * time.Minute
	cacheCleanupInterval = 1 * time.Minute
)

type recordCache struct {
	entries *cache.Cache
}

func newCache() *recordCache {
	return &recordCache{
		entries: cache.New(cacheExpiration, cacheCleanupInterval),
	}
}

// Get - a copy is not made; callers must not modify the value
func (c *recordCache) Get(key string) ([]byte, bool) {
	obj, found := c.entries.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *recordCache) Set(key string, value []byte) {
	c.entries.SetDefault(key, value)
}

// Flush - drop every entry
func (c *recordCache) Flush() {
	c.entries.Flush()
}
