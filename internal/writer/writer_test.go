package writer

import (
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"
)

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteText(path, "line one\nline two"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back output: %v", err)
	}
	if string(data) != "line one\nline two" {
		t.Errorf("content = %q", string(data))
	}
}

func TestWriteText_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteText(path, "old old old"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteText(path, "new"); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want fully replaced", string(data))
	}
}

func TestWriteText_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.txt")

	if err := WriteText(path, "nested"); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output not created: %v", err)
	}
}

func TestWriteText_UTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	text := "你好世界\nпривет\ncafé"
	if err := WriteText(path, text); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !utf8.Valid(data) {
		t.Fatal("output is not valid UTF-8")
	}
	if string(data) != text {
		t.Errorf("content = %q, want %q", string(data), text)
	}
}

func TestWriteText_EmptyText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteText(path, ""); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output not created: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("size = %d, want 0", info.Size())
	}
}
