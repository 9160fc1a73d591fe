package export

import (
	"archive/zip"
	"bytes"
	"io"
	"time"

	"pagespec_server/internal/types"
)

// ContentType is the media type of an archive produced by WriteZip.
const ContentType = "application/zip"

// archiveTime is stamped on every entry so identical bundles produce
// identical bytes.
var archiveTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// WriteZip streams the bundle to w as a zip archive, entries in bundle order.
func WriteZip(w io.Writer, b *Bundle) error {
	zw := zip.NewWriter(w)
	for _, f := range b.Files {
		header := &zip.FileHeader{
			Name:     f.Filename,
			Method:   zip.Deflate,
			Modified: archiveTime,
		}
		header.SetMode(0o644)

		entry, err := zw.CreateHeader(header)
		if err != nil {
			return types.NewPackagingError(f.Filename, err)
		}
		if _, err := io.WriteString(entry, f.Content); err != nil {
			return types.NewPackagingError(f.Filename, err)
		}
	}
	if err := zw.Close(); err != nil {
		return types.NewPackagingError("", err)
	}
	return nil
}

// BuildZip returns the archive bytes for b.
func BuildZip(b *Bundle) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
