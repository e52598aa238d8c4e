package score

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileStore persists scores in a TOML file. Values may be written by hand
// as integers, floats (truncated) or strings; anything else reads as invalid.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) read() (map[string]interface{}, error) {
	values := make(map[string]interface{})
	if _, err := os.Stat(f.Path); errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if _, err := toml.DecodeFile(f.Path, &values); err != nil {
		return nil, fmt.Errorf("error decoding score file: %w", err)
	}
	return values, nil
}

func (f *FileStore) Get(key string) (int, error) {
	values, err := f.read()
	if err != nil {
		return 0, err
	}

	raw, ok := values[key]
	if !ok {
		return 0, ErrNotFound
	}

	switch v := raw.(type) {
	case int64:
		return int(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, raw)
		}
		return int(v), nil
	case string:
		return parseValue(v)
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidValue, raw)
	}
}

func (f *FileStore) Set(key string, value int) (err error) {
	values, err := f.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking every future write
		Logger.Printf("[SCORE] %v, rewriting %s", err, f.Path)
		values = make(map[string]interface{})
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("error creating score directory: %w", err)
	}

	file, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("error creating score file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error writing score file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(file).Encode(values); err != nil {
		return fmt.Errorf("error encoding score file: %w", err)
	}
	return nil
}
