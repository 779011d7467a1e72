// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tangle

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/hivenode/hived/message"
)

const (
	defaultExpiration      = 2 * time.Minute
	defaultCleanupInterval = 1 * time.Minute
)

// Cache - read-through cache of stored messages
//
// only messages present in storage are cached, so a miss always
// reaches the store
type Cache struct {
	store    StorageBackend
	messages *cache.Cache
}

// NewCache - cache in front of store, zero expiration selects the default
func NewCache(store StorageBackend, expiration time.Duration) *Cache {
	if 0 == expiration {
		expiration = defaultExpiration
	}
	return &Cache{
		store:    store,
		messages: cache.New(expiration, defaultCleanupInterval),
	}
}

// Message - fetch a message, from the cache if possible
func (c *Cache) Message(id message.ID) (*message.Message, error) {
	if obj, found := c.messages.Get(cacheKey(id)); found {
		m := obj.(message.Message)
		return &m, nil
	}

	m, err := c.store.FetchMessage(id)
	if nil != err || nil == m {
		return nil, err
	}
	c.messages.SetDefault(cacheKey(id), *m)
	return m, nil
}

// Store - as StoreMessage, caching the message once written
func (c *Cache) Store(id message.ID, m message.Message, metadata message.Metadata) (bool, error) {
	stored, err := StoreMessage(c.store, id, m, metadata)
	if nil != err {
		return false, err
	}
	if stored {
		c.messages.SetDefault(cacheKey(id), m)
	}
	return stored, nil
}

// Count - number of cached messages, including expired ones not yet
// cleaned up
func (c *Cache) Count() int {
	return c.messages.ItemCount()
}

// Reset - empty the graph partitions and the cache
func (c *Cache) Reset() error {
	c.messages.Flush()
	return Reset(c.store)
}

func cacheKey(id message.ID) string {
	return string(id[:])
}
