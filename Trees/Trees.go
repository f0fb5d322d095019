package Trees

import "golang.org/x/exp/constraints"

// Map is an ordered map from K to V.
// Receivers that has a bool as the last return value indicate with it whether the other
// return values are defined. For example, Min on an empty tree returns (k K, v V, false);
// k and v should not be used in that case.
// Methods implemented recursively are noted, otherwise they are iterative.
type Map[K constraints.Ordered, V any] interface {
	//Insert (k, v). Returns true if the map gained an entry.
	//The handling of an existing k depends on the Duplicates option.
	Insert(k K, v V) bool
	//Find the value associated with k, or a *KeyNotFoundError.
	Find(k K) (V, error)
	//Remove one entry with key k, or return a *KeyNotFoundError.
	Remove(k K) error
	//Min entry of the map.
	Min() (K, V, bool)
	//Max entry of the map.
	Max() (K, V, bool)
	//Empty reports whether the map has no entry.
	Empty() bool
}

var _ Map[int, struct{}] = (*Node[int, struct{}])(nil)
