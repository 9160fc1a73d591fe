package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"pagespec_server/internal/logger"
	"pagespec_server/internal/types"
)

// DirWriter writes bundles into a directory tree.
type DirWriter struct {
	fs  afero.Fs
	log *logger.Logger
}

// NewDirWriter returns a DirWriter over fs. A nil fs writes to the OS.
func NewDirWriter(fs afero.Fs, log *logger.Logger) *DirWriter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &DirWriter{fs: fs, log: log}
}

// Write saves every bundle file under dir and returns the written paths.
func (d *DirWriter) Write(ctx context.Context, dir string, b *Bundle) ([]string, error) {
	if err := d.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, types.NewPackagingError(dir, fmt.Errorf("create output dir: %w", err))
	}

	written := make([]string, 0, len(b.Files))
	for _, f := range b.Files {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		path := filepath.Join(dir, f.Filename)
		if err := d.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, types.NewPackagingError(f.Filename, fmt.Errorf("create subdirectories: %w", err))
		}
		if err := afero.WriteFile(d.fs, path, []byte(f.Content), os.FileMode(0o644)); err != nil {
			return written, types.NewPackagingError(f.Filename, err)
		}
		written = append(written, path)
	}

	d.log.WithFields(map[string]any{"dir": dir, "files": len(written)}).Info("export written")
	return written, nil
}
