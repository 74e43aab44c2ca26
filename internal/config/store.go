package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultReadStartHeader is the marker line that delimits free-form
	// preamble from data rows in raw Alveograph output.
	DefaultReadStartHeader = "Results"
	// DefaultSheetName is the worksheet name used for exports when the
	// caller does not override it.
	DefaultSheetName = "Data"
)

// StoreFileName is the fixed file name the Store is persisted under,
// located next to the executable.
const StoreFileName = "alveo-config.yaml"

// Store holds the persisted parsing parameters. A single instance is
// owned by the caller driving the pipeline; parse and export calls
// borrow it read-only.
type Store struct {
	// ReadStartHeader is the line of raw instrument text after which
	// data rows begin. Everything before and including this line is
	// discarded by the parser.
	ReadStartHeader string `yaml:"read_start_header" validate:"required"`
	// SheetName is the default worksheet name for exports.
	SheetName string `yaml:"sheet_name" validate:"required"`
}

// DefaultStore returns a Store populated with the documented defaults.
func DefaultStore() Store {
	return Store{
		ReadStartHeader: DefaultReadStartHeader,
		SheetName:       DefaultSheetName,
	}
}

var storeValidate = validator.New()

// Validate checks that all required Store fields are populated.
func (s Store) Validate() error {
	return storeValidate.Struct(s)
}

// StoreOp identifies which store operation failed.
type StoreOp string

const (
	StoreOpRead        StoreOp = "read"
	StoreOpDeserialize StoreOp = "deserialize"
	StoreOpWrite       StoreOp = "write"
)

// StoreError reports a failure to load or persist the Store. Op tells
// the caller whether the file was unreadable, unparseable, or
// unwritable so it can decide between writing back defaults and leaving
// the file untouched.
type StoreError struct {
	Op    StoreOp
	Path  string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("config store %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// LoadStore reads and deserializes a Store from path. A missing file is
// a StoreError with Op StoreOpRead wrapping os.ErrNotExist; contents
// that do not parse or do not validate are Op StoreOpDeserialize.
func LoadStore(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Store{}, &StoreError{Op: StoreOpRead, Path: path, Cause: err}
	}

	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return Store{}, &StoreError{Op: StoreOpDeserialize, Path: path, Cause: err}
	}
	if err := store.Validate(); err != nil {
		return Store{}, &StoreError{Op: StoreOpDeserialize, Path: path, Cause: err}
	}

	return store, nil
}

// Save serializes the Store to path, creating parent directories as
// needed.
func (s Store) Save(path string) error {
	if err := s.Validate(); err != nil {
		return &StoreError{Op: StoreOpWrite, Path: path, Cause: err}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return &StoreError{Op: StoreOpWrite, Path: path, Cause: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &StoreError{Op: StoreOpWrite, Path: path, Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &StoreError{Op: StoreOpWrite, Path: path, Cause: err}
	}

	return nil
}

// LoadStoreOrInit implements the startup contract for the persisted
// Store: a missing file writes back the documented defaults and
// proceeds with them; corrupt or unreadable contents fall back to
// in-memory defaults WITHOUT overwriting the file, returning the load
// error so the caller can report it. The returned Store is always
// usable.
func LoadStoreOrInit(path string) (Store, error) {
	store, err := LoadStore(path)
	if err == nil {
		return store, nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) && storeErr.Op == StoreOpRead && os.IsNotExist(storeErr.Cause) {
		defaults := DefaultStore()
		if saveErr := defaults.Save(path); saveErr != nil {
			return defaults, saveErr
		}
		return defaults, nil
	}

	return DefaultStore(), err
}
