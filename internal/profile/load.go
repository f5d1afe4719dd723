package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidProfile wraps schema validation failures so callers can
// distinguish a malformed profile from the sanctioned no-profile path.
type ErrInvalidProfile struct {
	Path string
	Err  error
}

func (e *ErrInvalidProfile) Error() string {
	return fmt.Sprintf("invalid profile %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidProfile) Unwrap() error { return e.Err }

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compileSchema compiles the embedded profile schema once per process.
func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		b, err := json.Marshal(profileSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://learner-profile.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// Load reads and validates a learner profile from path.
// A missing file is not an error: it returns (nil, nil), the documented
// no-profile path. A present but malformed file fails fast.
func Load(path string) (*LearnerProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(raw, path)
}

// Parse validates raw profile JSON and unmarshals it.
func Parse(raw []byte, path string) (*LearnerProfile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidProfile{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidProfile{Path: path, Err: err}
	}

	var p LearnerProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &ErrInvalidProfile{Path: path, Err: err}
	}
	return &p, nil
}
