/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import (
	"github.com/voedger/nxtree/pkg/objcache/internal/hashicorp"
	"github.com/voedger/nxtree/pkg/objcache/internal/imcache"
)

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param.
//
// # Panics:
//   - if size is not positive
func New[K comparable, V any](size int) ICache[K, V] {
	return hashicorp.New[K, V](size)
}

// Creates and return new object cache without size limit and expiration.
//
// Suitable for small closed key sets, such as names of a schema catalog.
func NewUnbounded[K comparable, V any]() ICache[K, V] {
	return imcache.New[K, V]()
}
