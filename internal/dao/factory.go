// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package dao

// StoreFactory implements the Factory interface on top of a Store.
type StoreFactory struct {
	store *Store
	cache *CountCache
}

// NewFactory creates a new StoreFactory with the given store.
func NewFactory(store *Store) *StoreFactory {
	return &StoreFactory{
		store: store,
		cache: NewCountCache(DefaultCacheTTL),
	}
}

// Store returns the data store.
func (f *StoreFactory) Store() *Store {
	return f.store
}

// Cache returns the count cache.
func (f *StoreFactory) Cache() *CountCache {
	return f.cache
}
