package trichan

// The status word packs the whole role assignment into a handful of bits:
//
//	bits 0..2: permutation code in 0..5, selecting one of the six
//	           bijections of {writer, storage, reader} onto the three cells
//	bit  3:    fresh flag, set when storage holds a value the reader has
//	           not adopted yet
//
// Both transitions (publish and consume) replace the permutation bits in a
// single CompareAndSwap, so the role bijection is never observable in a
// half-updated state.
const (
	permMask  = 0b0111
	freshFlag = 0b1000
)

// Cell index owned by each role, per permutation code.
//
// Code layout (cell0, cell1, cell2):
//
//	0: W S R
//	1: W R S
//	2: S R W
//	3: S W R
//	4: R S W
//	5: R W S
var (
	writerCell  = [6]int{0, 0, 2, 1, 2, 1}
	storageCell = [6]int{1, 2, 0, 0, 1, 2}
	readerCell  = [6]int{2, 1, 1, 2, 0, 0}
)

// publishSucc[c] is the code after exchanging the writer and storage roles.
// The reader's cell is untouched, so a publish can never move the cell a
// concurrent reader is holding. Exchanging twice restores the code.
var publishSucc = [6]uint32{3, 2, 1, 0, 5, 4}

// consumeSucc[c] is the code after exchanging the reader and storage roles.
// The writer's cell is untouched. Exchanging twice restores the code.
var consumeSucc = [6]uint32{1, 0, 4, 5, 2, 3}

//go:nosplit
func statusCode(s uint32) uint32 {
	return s & permMask
}

// publishStatus returns the status word after a publish transition:
// writer and storage roles exchanged, fresh set.
//
//go:nosplit
func publishStatus(s uint32) uint32 {
	return s&^permMask | publishSucc[s&permMask] | freshFlag
}

// consumeStatus returns the status word after a consume transition:
// reader and storage roles exchanged, fresh cleared.
// Only meaningful when fresh is set.
//
//go:nosplit
func consumeStatus(s uint32) uint32 {
	return s&^(permMask|freshFlag) | consumeSucc[s&permMask]
}
