package gen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrFileExists is returned by create-only operations when the destination
// is already occupied. Match with errors.Is.
var ErrFileExists = errors.New("file already exists")

// Operation is a staged filesystem mutation.
//
// Validate checks whether the operation would succeed without performing it.
// Parent directories may be created during validation (idempotent).
// force=true skips collision checks.
//
// Execute performs the mutation and should only run after Validate succeeds.
//
// Description returns a one-line summary for terminal output.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp creates a new file and refuses to replace an existing one.
// Validation fails with ErrFileExists on collision unless force is set.
type WriteFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", filepath.Dir(op.Path), err)
	}

	if !force {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, op.Path)
		}
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

// OverwriteFileOp writes a file unconditionally, replacing any previous
// content. Used for artifacts that are regenerated on every run (tests,
// view templates); the silent replacement is deliberate.
type OverwriteFileOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

func (op *OverwriteFileOp) Validate(ctx context.Context, force bool) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", filepath.Dir(op.Path), err)
	}
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}
	return nil
}

func (op *OverwriteFileOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(op.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *OverwriteFileOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}

// EnsureDirOp creates a directory tree. An existing directory is not an
// error, so the operation is safe to re-run.
type EnsureDirOp struct {
	Path string
	Mode fs.FileMode
}

func (op *EnsureDirOp) Validate(ctx context.Context, force bool) error {
	if info, err := os.Stat(op.Path); err == nil && !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", op.Path)
	}
	return nil
}

func (op *EnsureDirOp) Execute(ctx context.Context) error {
	return os.MkdirAll(op.Path, op.Mode)
}

func (op *EnsureDirOp) Description() string {
	return fmt.Sprintf("Ensure directory %s", op.Path)
}
