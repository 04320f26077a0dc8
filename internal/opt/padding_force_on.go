//go:build trichan_enable_padding

package opt

// CellPad_ separates adjacent payload cells by at least a cache line.
// Padding is force-enabled via the trichan_enable_padding build tag.
// Use: go build -tags=trichan_enable_padding
type CellPad_ struct {
	_ [CacheLineSize_]byte
}
