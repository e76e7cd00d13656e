package configs

import (
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads CUE files validated against a closed schema.
// Files are read on first use; a value in an earlier file shadows later ones.
type Loader struct {
	files func() ([]configFile, error)
}

type configFile struct {
	path  string
	value cue.Value
}

func NewLoader(paths []string, schema string) Loader {
	return Loader{
		files: sync.OnceValues(func() ([]configFile, error) {
			return loadFiles(paths, schema)
		}),
	}
}

func loadFiles(paths []string, schemaSrc string) ([]configFile, error) {
	// values from different runtimes cannot be unified
	cueCtx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = cueCtx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	files := make([]configFile, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		value := cueCtx.CompileBytes(src, cue.Filename(path))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile config %s: %w", path, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("validate config %s: %w", path, err)
			}
		}
		files = append(files, configFile{
			path:  path,
			value: value,
		})
	}
	return files, nil
}

// Check reports read, compile and schema errors of every file.
func (l Loader) Check() error {
	_, err := l.files()
	return err
}

// Decode decodes the value at path from the first file defining it into target.
// It returns ErrValueNotFound if no file does.
func (l Loader) Decode(path string, target any) error {
	files, err := l.files()
	if err != nil {
		return err
	}
	cuePath := cue.ParsePath(path)
	for _, file := range files {
		value := file.value.LookupPath(cuePath)
		if !value.Exists() {
			continue
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("decode %s in %s: %w", path, file.path, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValueNotFound, path)
}
