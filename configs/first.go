package configs

import (
	"errors"
)

// First is Decode for providers: a missing value is the zero value.
// Other errors panic, so binaries should call Loader.Check before resolving providers.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.Decode(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		var zero T
		return zero
	}
	if err != nil {
		panic(err)
	}
	return
}
