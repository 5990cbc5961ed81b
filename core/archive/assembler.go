// ABOUTME: Archive assembler packages successful extraction outcomes into a zip payload
// ABOUTME: Failed outcomes are skipped; entry order and bytes are deterministic

package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"strings"

	"docextract-app-api/core/domain"
)

// Assemble packages the successful outcomes into a zip archive, one rendered
// file per document. Failed outcomes contribute no entry. A batch with zero
// successes yields a valid empty archive.
func Assemble(outcomes []*domain.Outcome, format domain.OutputFormat) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	used := make(map[string]struct{})
	for _, outcome := range outcomes {
		if outcome == nil || !outcome.Succeeded() {
			continue
		}

		content, err := format.Render(outcome.Document)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", outcome.Filename, err)
		}

		name := entryName(outcome.Filename, format, used)
		// A bare header keeps the archive bytes reproducible; CreateHeader
		// with a Modified time would embed the wall clock.
		entry, err := w.CreateHeader(&zip.FileHeader{
			Name:   name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, err
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// entryName derives a collision-free archive entry name by swapping the
// original extension for the format's. The first occurrence keeps the bare
// name; collisions get an increasing numeric suffix before the extension.
// Every issued name is recorded, so a suffixed name can never be reissued
// for a later document whose bare name happens to match it.
func entryName(filename string, format domain.OutputFormat, used map[string]struct{}) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	if base == "" {
		base = "document"
	}
	ext := format.Extension()

	name := base + ext
	for n := 1; ; n++ {
		if _, taken := used[name]; !taken {
			used[name] = struct{}{}
			return name
		}
		name = fmt.Sprintf("%s-%d%s", base, n, ext)
	}
}
