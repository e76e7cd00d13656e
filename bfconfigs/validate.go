package bfconfigs

import "github.com/reusee/bf/configs"

// Validate returns the errors the providers of this package would panic on.
// Binaries call it before resolving any of them.
func Validate(loader configs.Loader) error {
	if err := loader.Check(); err != nil {
		return err
	}
	if _, err := parseEOF(loader); err != nil {
		return err
	}
	if _, err := parseTimeout(loader); err != nil {
		return err
	}
	return nil
}
