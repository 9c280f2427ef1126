package configs

import (
	"errors"
	"fmt"
)

// Lookup decodes the first value at path. ok is false when no source sets it.
func Lookup[T any](loader Loader, path string) (value T, ok bool, err error) {
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("config %s: %w", path, err)
	}
	return value, true, nil
}

// First is Lookup that returns the zero T when path is not set and panics on
// bad sources.
func First[T any](loader Loader, path string) T {
	value, _, err := Lookup[T](loader, path)
	if err != nil {
		panic(err)
	}
	return value
}
