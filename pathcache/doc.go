// Package pathcache implements a bounded path-cost cache: a (from,to)-keyed
// cache whose entries go stale when the agent
// has moved more than a movement tolerance from the anchor position used
// at insertion, or once they age past a TTL.
//
// Eviction-by-size is delegated to github.com/golang/groupcache/lru.Cache;
// this package layers domain freshness (anchor distance, TTL) on top.
package pathcache
