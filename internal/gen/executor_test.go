package gen_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillgen/quill/internal/gen"
)

func TestExecute_DryRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []gen.Operation{
		&gen.WriteFileOp{
			Path:    filepath.Join(tmpDir, "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := gen.Execute(ctx, ops, gen.ExecuteOptions{
		DryRun: true,
		Writer: &buf,
	})

	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "test.txt")); !os.IsNotExist(err) {
		t.Error("dry run created file")
	}

	if !strings.Contains(buf.String(), "[DRY RUN]") {
		t.Errorf("output missing [DRY RUN] marker, got: %s", buf.String())
	}
}

func TestExecute_RealRun(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	ops := []gen.Operation{
		&gen.WriteFileOp{
			Path:    filepath.Join(tmpDir, "sub", "test.txt"),
			Content: []byte("hello"),
			Mode:    0644,
		},
	}

	var buf bytes.Buffer
	err := gen.Execute(ctx, ops, gen.ExecuteOptions{Writer: &buf})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(tmpDir, "sub", "test.txt"))
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("wrong content: got %q, want %q", content, "hello")
	}
	if !strings.Contains(buf.String(), "✓") {
		t.Errorf("output missing checkmark: %s", buf.String())
	}
}

func TestExecute_ValidatesEverythingFirst(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	// Second op collides, so the first must not be written either.
	existing := filepath.Join(tmpDir, "existing.txt")
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	ops := []gen.Operation{
		&gen.WriteFileOp{
			Path:    filepath.Join(tmpDir, "new.txt"),
			Content: []byte("content"),
			Mode:    0644,
		},
		&gen.WriteFileOp{
			Path:    existing,
			Content: []byte("new"),
			Mode:    0644,
		},
	}

	err := gen.Execute(ctx, ops, gen.ExecuteOptions{})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !errors.Is(err, gen.ErrFileExists) {
		t.Errorf("want ErrFileExists, got: %v", err)
	}
	if !strings.Contains(err.Error(), "validation failed") {
		t.Errorf("error should say which phase failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "new.txt")); !os.IsNotExist(err) {
		t.Error("new.txt was created despite validation failure in another operation")
	}
	if content, _ := os.ReadFile(existing); string(content) != "old" {
		t.Errorf("existing file was modified: %q", content)
	}
}

func TestExecute_Force(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.txt")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	ops := []gen.Operation{
		&gen.WriteFileOp{Path: path, Content: []byte("new"), Mode: 0644},
	}

	if err := gen.Execute(ctx, ops, gen.ExecuteOptions{Force: false}); err == nil {
		t.Error("expected error when file exists without force")
	}

	if err := gen.Execute(ctx, ops, gen.ExecuteOptions{Force: true}); err != nil {
		t.Fatalf("execute with force failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Errorf("file not overwritten: got %q", content)
	}
}

func TestOverwriteFileOp_ReplacesWithoutForce(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "view.html.twig")

	if err := os.WriteFile(path, []byte("hand edited"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	ops := []gen.Operation{
		&gen.OverwriteFileOp{Path: path, Content: []byte("regenerated"), Mode: 0644},
	}

	if err := gen.Execute(ctx, ops, gen.ExecuteOptions{}); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "regenerated" {
		t.Errorf("file not replaced: got %q", content)
	}
}

func TestEnsureDirOp_Idempotent(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "a", "b")

	op := &gen.EnsureDirOp{Path: dir, Mode: 0755}

	for i := 0; i < 2; i++ {
		if err := op.Validate(ctx, false); err != nil {
			t.Fatalf("validate round %d: %v", i, err)
		}
		if err := op.Execute(ctx); err != nil {
			t.Fatalf("execute round %d: %v", i, err)
		}
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}

func TestEnsureDirOp_FileInTheWay(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "occupied")

	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	op := &gen.EnsureDirOp{Path: path, Mode: 0755}
	if err := op.Validate(ctx, false); err == nil {
		t.Error("expected error when path exists as a file")
	}
}

func TestWriteFileOp_NilContent(t *testing.T) {
	ctx := context.Background()
	op := &gen.WriteFileOp{
		Path: filepath.Join(t.TempDir(), "test.txt"),
		Mode: 0644,
	}

	if err := op.Validate(ctx, false); err == nil {
		t.Error("nil content should fail validation")
	}
}

func TestWriteFileOp_Description(t *testing.T) {
	op := &gen.WriteFileOp{
		Path:    "/path/to/file.txt",
		Content: []byte("hello world"),
		Mode:    0644,
	}

	desc := op.Description()
	if !strings.Contains(desc, "/path/to/file.txt") {
		t.Errorf("description missing path: %s", desc)
	}
	if !strings.Contains(desc, "11 bytes") {
		t.Errorf("description missing size: %s", desc)
	}
}
