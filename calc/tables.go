package calc

// sexDigit, zexDigit, maxDigit and minDigit are 4-entry tables giving the
// mask/fill pattern for a partial top ("boundary") nibble holding only
// bits%4 live low bits, indexed by that residual bit count minus one
// (index 0 means 1 live bit, ... index 3 means 4 live bits i.e. a full
// nibble uses index 3 conceptually but callers index with bits&3 directly,
// matching the original's zero-based bits%4 indexing where index 0 is
// also reused to mean "no partial nibble" in some callers).
var (
	// sexDigit ORs in the high, now-sign-extended bits of a boundary
	// nibble: {14,12,8,0} for boundary widths 1..4.
	sexDigit = [4]Word{14, 12, 8, 0}
	// zexDigit masks a boundary nibble down to its live low bits:
	// {1,3,7,15} for boundary widths 1..4.
	zexDigit = [4]Word{1, 3, 7, 15}
	// maxDigit[k] is (1<<k)-1, the k low bits of a nibble: {0,1,3,7}.
	// Indexed by a residual bit count it masks a partial nibble; indexed
	// by a sign-bit position it is the largest non-negative value of a
	// boundary nibble of width 1..4.
	maxDigit = [4]Word{0, 1, 3, 7}
	// minDigit[k] has bit k and every higher bit of the nibble set: the
	// sign bit of a boundary nibble of width 1..4, sign-extended to the
	// top of the nibble: {15,14,12,8}.
	minDigit = [4]Word{15, 14, 12, 8}
)

// shrsTable[digit][bitShift] gives (newLow, spillHigh): shifting a single
// nibble right by bitShift (0..3) bits yields newLow in place and
// spillHigh carried into the next-lower destination nibble.
var shrsTable = [16][4][2]Word{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 0}, {0, 8}, {0, 4}, {0, 2}},
	{{2, 0}, {1, 0}, {0, 8}, {0, 4}},
	{{3, 0}, {1, 8}, {0, 12}, {0, 6}},
	{{4, 0}, {2, 0}, {1, 0}, {0, 8}},
	{{5, 0}, {2, 8}, {1, 4}, {0, 10}},
	{{6, 0}, {3, 0}, {1, 8}, {0, 12}},
	{{7, 0}, {3, 8}, {1, 12}, {0, 14}},
	{{8, 0}, {4, 0}, {2, 0}, {1, 0}},
	{{9, 0}, {4, 8}, {2, 4}, {1, 2}},
	{{10, 0}, {5, 0}, {2, 8}, {1, 4}},
	{{11, 0}, {5, 8}, {2, 12}, {1, 6}},
	{{12, 0}, {6, 0}, {3, 0}, {1, 8}},
	{{13, 0}, {6, 8}, {3, 4}, {1, 10}},
	{{14, 0}, {7, 0}, {3, 8}, {1, 12}},
	{{15, 0}, {7, 8}, {3, 12}, {1, 14}},
}

// binaryTable converts a nibble to its 4-character binary rendering.
var binaryTable = [16]string{
	"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111",
	"1000", "1001", "1010", "1011", "1100", "1101", "1110", "1111",
}

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)
