package conv

import (
	"fmt"
	"math"
)

// MaxRows is the number of row positions a bitmap can address.
const MaxRows = math.MaxUint32 + 1

// RowToUint32 converts a row position to a bitmap member.
func RowToUint32(row int) (uint32, error) {
	if row < 0 {
		return 0, fmt.Errorf("row %d cannot be converted to uint32 (negative)", row)
	}
	if uint64(row) > math.MaxUint32 {
		return 0, fmt.Errorf("row %d cannot be converted to uint32 (too large)", row)
	}
	return uint32(row), nil
}

// Uint32ToRow converts a bitmap member back to a row position.
// Every uint32 fits into an int on the 64-bit platforms the module supports.
func Uint32ToRow(v uint32) int {
	return int(v)
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// MustUint64ToInt is Uint64ToInt for counts that are bounded by MaxRows.
func MustUint64ToInt(v uint64) int {
	n, err := Uint64ToInt(v)
	if err != nil {
		panic(err)
	}
	return n
}
