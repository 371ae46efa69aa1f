package bitmap

import "github.com/RoaringBitmap/roaring/v2"

// And returns the intersection of all bitmaps. With no arguments it returns
// an empty bitmap. The arguments are not modified.
func And(bs ...*Bitmap) *Bitmap {
	switch len(bs) {
	case 0:
		return New()
	case 1:
		return bs[0].Clone()
	}
	return Wrap(roaring.FastAnd(unwrap(bs)...))
}

// Or returns the union of all bitmaps. The arguments are not modified.
func Or(bs ...*Bitmap) *Bitmap {
	switch len(bs) {
	case 0:
		return New()
	case 1:
		return bs[0].Clone()
	}
	return Wrap(roaring.FastOr(unwrap(bs)...))
}

// AndNot returns the rows of a that are not in b.
func AndNot(a, b *Bitmap) *Bitmap {
	return Wrap(roaring.AndNot(a.rb, b.rb))
}

// Not returns the complement of b relative to [0, size).
func Not(b *Bitmap, size int) *Bitmap {
	return b.Complement(size)
}

func unwrap(bs []*Bitmap) []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, len(bs))
	for i, b := range bs {
		out[i] = b.rb
	}
	return out
}
