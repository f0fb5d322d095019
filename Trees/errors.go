package Trees

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound matches every *KeyNotFoundError through errors.Is.
var ErrKeyNotFound = errors.New("key not found")

// KeyNotFoundError is returned by Find and Remove when the search runs out of children
// before meeting Key.
type KeyNotFoundError[K any] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("key not found: %v", e.Key)
}

func (e *KeyNotFoundError[K]) Is(target error) bool {
	return target == ErrKeyNotFound
}
