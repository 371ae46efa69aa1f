package column

import "cmp"

// RowComparator orders two row positions of one column. It returns a
// negative number, zero or a positive number as row i sorts before, with or
// after row j.
type RowComparator func(i, j int) int

// Reversed returns c with its operands swapped, for descending order.
func Reversed(c RowComparator) RowComparator {
	return func(i, j int) int { return c(j, i) }
}

// Lexicographic composes comparators: the first decides unless it ties, then
// the next, and so on. Rows that tie on every comparator compare equal.
func Lexicographic(cs ...RowComparator) RowComparator {
	return func(i, j int) int {
		for _, c := range cs {
			if r := c(i, j); r != 0 {
				return r
			}
		}
		return 0
	}
}

// Compare orders two values in the column's natural ascending order. Every
// sentinel is the minimum of its domain (NaN for floats, the smallest integer
// for integer kinds, "" for categories), so missing values sort first.
func (c *Typed[T]) Compare(a, b T) int {
	return cmp.Compare(a, b)
}

// RowComparator returns a comparator over the column's rows. The comparator
// reads the column when called; it holds no state of its own.
func (c *Typed[T]) RowComparator() RowComparator {
	return func(i, j int) int {
		return cmp.Compare(c.data[i], c.data[j])
	}
}
