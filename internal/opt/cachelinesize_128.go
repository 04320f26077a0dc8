//go:build trichan_cachelinesize_128 && !trichan_cachelinesize_64

package opt

// CacheLineSize_ is force-set to 128 via the trichan_cachelinesize_128 build tag.
const CacheLineSize_ = 128
