package gamedata

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/samdwyer/dungeonrun/internal/errors"
)

// Load reads and unmarshals a JSON file compiled into the binary.
func Load[T any](filename string) (T, error) {
	content, err := files.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, errors.WrapWithCode(err, errors.CodeNotFound, "read embedded "+filename)
	}
	return decode[T](filename, content)
}

// LoadFile reads and unmarshals a JSON file from disk.
func LoadFile[T any](path string) (T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, errors.WrapWithCode(err, errors.CodeNotFound, "read "+path)
	}
	return decode[T](path, content)
}

// decode rejects unknown fields so a misspelled key fails loudly.
func decode[T any](name string, content []byte) (T, error) {
	var result T
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse "+name)
	}
	return result, nil
}
