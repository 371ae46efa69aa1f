// Package conv provides checked conversions between row positions and the
// 32-bit members stored in row-index bitmaps.
//
// Row positions are Go ints everywhere in the public API; bitmaps store
// uint32. A table therefore addresses at most math.MaxUint32+1 rows.
package conv
