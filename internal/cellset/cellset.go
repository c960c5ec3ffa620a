// Package cellset wraps github.com/RoaringBitmap/roaring to give grid nodes
// a compressed set of 32-bit cell indices with add, membership, cardinality,
// an intersection test, and enumeration of an intersection. There is no
// union operation. Grid nodes never touch roaring.Bitmap
// directly — they go through Set, the same way the rest of this module
// keeps a third-party dependency behind one small package boundary.
package cellset

import "github.com/RoaringBitmap/roaring"

// Set is a sparse, compressed set of 32-bit cell indices.
type Set struct {
	bmp *roaring.Bitmap
}

// New returns an empty cellset.
func New() *Set {
	return &Set{bmp: roaring.NewBitmap()}
}

// Add marks idx as present.
func (s *Set) Add(idx uint32) {
	s.bmp.Add(idx)
}

// Contains reports whether idx is present.
func (s *Set) Contains(idx uint32) bool {
	return s.bmp.Contains(idx)
}

// Cardinality returns the number of distinct indices present.
func (s *Set) Cardinality() uint64 {
	return s.bmp.GetCardinality()
}

// Intersects reports whether s and other share at least one index, without
// materializing the intersection.
func (s *Set) Intersects(other *Set) bool {
	return s.bmp.Intersects(other.bmp)
}

// IntersectionCells returns the sorted list of indices present in both s and
// other. It does not mutate either set.
func (s *Set) IntersectionCells(other *Set) []uint32 {
	clone := s.bmp.Clone()
	clone.And(other.bmp)
	return clone.ToArray()
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	return &Set{bmp: s.bmp.Clone()}
}
