//go:build trichan_disable_padding

package opt

// CellPad_ separates adjacent payload cells.
// Padding is force-disabled via the trichan_disable_padding build tag.
// Use: go build -tags=trichan_disable_padding
type CellPad_ struct{}
