//go:build trichan_cachelinesize_64

package opt

// CacheLineSize_ is force-set to 64 via the trichan_cachelinesize_64 build tag.
const CacheLineSize_ = 64
