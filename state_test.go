package trichan

import "testing"

func TestRoleBijection(t *testing.T) {
	for code := 0; code < 6; code++ {
		seen := [3]bool{}
		for _, idx := range [3]int{writerCell[code], storageCell[code], readerCell[code]} {
			if idx < 0 || idx > 2 {
				t.Fatalf("code=%d cell=%d out of range", code, idx)
			}
			if seen[idx] {
				t.Fatalf("code=%d cell=%d assigned to two roles", code, idx)
			}
			seen[idx] = true
		}
	}
}

func TestPublishExchangesWriterAndStorage(t *testing.T) {
	for code := uint32(0); code < 6; code++ {
		next := publishSucc[code]
		if next > 5 {
			t.Fatalf("code=%d successor=%d out of range", code, next)
		}
		if writerCell[next] != storageCell[code] {
			t.Fatalf("code=%d: new writer cell=%d, want old storage cell=%d",
				code, writerCell[next], storageCell[code])
		}
		if storageCell[next] != writerCell[code] {
			t.Fatalf("code=%d: new storage cell=%d, want old writer cell=%d",
				code, storageCell[next], writerCell[code])
		}
		if readerCell[next] != readerCell[code] {
			t.Fatalf("code=%d: publish moved the reader cell %d -> %d",
				code, readerCell[code], readerCell[next])
		}
	}
}

func TestConsumeExchangesReaderAndStorage(t *testing.T) {
	for code := uint32(0); code < 6; code++ {
		next := consumeSucc[code]
		if next > 5 {
			t.Fatalf("code=%d successor=%d out of range", code, next)
		}
		if readerCell[next] != storageCell[code] {
			t.Fatalf("code=%d: new reader cell=%d, want old storage cell=%d",
				code, readerCell[next], storageCell[code])
		}
		if storageCell[next] != readerCell[code] {
			t.Fatalf("code=%d: new storage cell=%d, want old reader cell=%d",
				code, storageCell[next], readerCell[code])
		}
		if writerCell[next] != writerCell[code] {
			t.Fatalf("code=%d: consume moved the writer cell %d -> %d",
				code, writerCell[code], writerCell[next])
		}
	}
}

// Exchanging the same pair of roles twice must restore the original code,
// so each successor table is its own inverse.
func TestTransitionsAreInvolutions(t *testing.T) {
	for code := uint32(0); code < 6; code++ {
		if got := publishSucc[publishSucc[code]]; got != code {
			t.Fatalf("publish twice: code=%d got=%d", code, got)
		}
		if got := consumeSucc[consumeSucc[code]]; got != code {
			t.Fatalf("consume twice: code=%d got=%d", code, got)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	for code := uint32(0); code < 6; code++ {
		p := publishStatus(code)
		if p&freshFlag == 0 {
			t.Fatalf("code=%d: publish did not set fresh", code)
		}
		if statusCode(p) != publishSucc[code] {
			t.Fatalf("code=%d: publish status code=%d want=%d",
				code, statusCode(p), publishSucc[code])
		}
		c := consumeStatus(code | freshFlag)
		if c&freshFlag != 0 {
			t.Fatalf("code=%d: consume did not clear fresh", code)
		}
		if statusCode(c) != consumeSucc[code] {
			t.Fatalf("code=%d: consume status code=%d want=%d",
				code, statusCode(c), consumeSucc[code])
		}
	}
}
