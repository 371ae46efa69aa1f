// Package bitmap provides row-index sets for predicate evaluation.
//
// A Bitmap is an ordered, deduplicated set of non-negative row positions,
// stored as a compressed Roaring bitmap. Every predicate evaluated against a
// column produces a fresh Bitmap; tables consume them to filter rows.
//
// # Set Algebra
//
// Selections from several columns are combined with ordinary set operations:
//
//	AND: bitmap.And(a, b, c)        intersection
//	OR:  bitmap.Or(a, b)            union
//	NOT: bitmap.Not(a, rowCount)    complement relative to [0, rowCount)
//
// The package functions never modify their arguments. The methods And, Or,
// AndNot and Xor modify the receiver in place and are meant for scratch
// bitmaps obtained from Get.
//
// # Iteration
//
// All yields members in ascending order:
//
//	for row := range sel.All() {
//	    ...
//	}
//
// # Thread Safety
//
// A Bitmap is not safe for concurrent mutation. Concurrent reads of a Bitmap
// that is no longer modified are safe.
package bitmap
