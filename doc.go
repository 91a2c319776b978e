// Package smallvec provides a generic vector with small-buffer
// optimization: up to a per-instantiation inline capacity, elements are
// stored directly inside the Vector struct with no heap allocation, and
// only past that threshold does the vector spill to a growable heap buffer.
//
// The inline capacity is chosen through the second type parameter, the
// backing array:
//
//	var v smallvec.Vector[int, [8]int] // up to 8 ints allocation-free
//	v.Push(42)
//	fmt.Println(v.Len(), v.Inlined())  // 1 true
//
// The common small-collection case therefore avoids allocator traffic and
// keeps elements hot in cache, while growth beyond the threshold behaves
// like an ordinary dynamic array with geometric reallocation.
package smallvec
