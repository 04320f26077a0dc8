//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !trichan_disable_padding && !trichan_enable_padding

package opt

// CellPad_ separates adjacent payload cells.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type CellPad_ struct{}
