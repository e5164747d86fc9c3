package schema

import (
	"errors"
	"fmt"
)

// Validation errors. Both are pre-flight: generation must not have touched
// the filesystem when either is returned. Match with errors.Is.
var (
	// ErrMultiplePrimaryKeys marks an entity declaring more than one
	// primary-key field; composite keys are not supported.
	ErrMultiplePrimaryKeys = errors.New("entity has multiple primary keys")

	// ErrMissingIDPrimaryKey marks an entity whose primary key is not a
	// field named exactly "id".
	ErrMissingIDPrimaryKey = errors.New(`entity needs a primary key field named "id"`)
)

// Validate enforces the primary-key shape the generator relies on: exactly
// one primary-key field, named "id". No side effects.
func Validate(d *Descriptor) error {
	keys := d.PrimaryKeys()

	if len(keys) > 1 {
		return fmt.Errorf("%w: %s declares %v", ErrMultiplePrimaryKeys, d.Name, keys)
	}

	if len(keys) == 0 || keys[0] != "id" {
		return fmt.Errorf("%w: %s", ErrMissingIDPrimaryKey, d.Name)
	}

	return nil
}
