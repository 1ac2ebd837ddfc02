package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	exportout "scidrill/internal/modules/export/port/out"
)

// FileArtifactWriter drops exports into a fixed directory.
type FileArtifactWriter struct {
	dir string
}

func NewFileArtifactWriter(dir string) *FileArtifactWriter {
	return &FileArtifactWriter{dir: dir}
}

var _ exportout.ArtifactWriter = (*FileArtifactWriter)(nil)

func (w *FileArtifactWriter) Write(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
