package bitmaprange

import "github.com/RoaringBitmap/roaring/v2"

// DebugRoaring renders the set of occupied offsets (relative to Base,
// not the raw item values) as a github.com/RoaringBitmap/roaring/v2
// bitmap. It exists purely for cheap structural logging and diffing --
// printing a Roaring bitmap is far more legible than a raw word dump --
// and is never called from Add, BaseUpdate or ForEach.
func (r *BitmapRange[T]) DebugRoaring() *roaring.Bitmap {
	rb := roaring.New()
	base := r.base
	r.ForEach(func(item T) {
		rb.Add(r.diff(item, base))
	})
	return rb
}
