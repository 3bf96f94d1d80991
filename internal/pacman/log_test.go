package pacman

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLog_MissingFile(t *testing.T) {
	content, size := ReadLog(filepath.Join(t.TempDir(), "nope.log"))
	if content != nil || size != 0 {
		t.Errorf("ReadLog(missing) = (%d bytes, %d), want empty and 0", len(content), size)
	}
}

func TestReadLog_ReturnsContentAndLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacman.log")
	data := "[2024-01-01T10:00:00+0000] [ALPM] installed foo (1.0-1)\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	content, size := ReadLog(path)
	if string(content) != data {
		t.Errorf("content = %q, want %q", content, data)
	}
	if size != int64(len(data)) {
		t.Errorf("size = %d, want %d", size, len(data))
	}
}

func TestLogSize(t *testing.T) {
	dir := t.TempDir()

	if size := LogSize(filepath.Join(dir, "missing.log")); size != 0 {
		t.Errorf("LogSize(missing) = %d, want 0", size)
	}

	path := filepath.Join(dir, "pacman.log")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if size := LogSize(path); size != 6 {
		t.Errorf("LogSize = %d, want 6", size)
	}
}
