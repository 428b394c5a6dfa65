package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/techdata"
)

// FileName converts an item name to a file name with the given extension.
// Example: "Drill X/200" and "md" → drill-x-200.md
func FileName(name, ext string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return ' '
		}
		return r
	}, name)
	name = strings.Join(strings.Fields(name), "-")
	if name == "" {
		name = "item"
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// Writer writes rendered items to a directory with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a new Writer.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{
		baseDir: baseDir,
		name:    name,
	}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.baseDir, w.name)
}

// Write saves the rendered content of the named item.
func (w *Writer) Write(name, ext, content string) error {
	if strings.TrimSpace(name) == "" {
		return techdata.Errorf(techdata.EINVALID, "item name required")
	}

	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.tempDir(), FileName(name, ext)), []byte(content), 0644)
}

// Commit replaces the output directory with everything written so far.
func (w *Writer) Commit() error {
	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}

	return os.Rename(w.tempDir(), w.finalDir())
}

// Abort discards everything written since the last Commit.
func (w *Writer) Abort() error {
	return os.RemoveAll(w.tempDir())
}
