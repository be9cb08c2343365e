package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat identifies a dictionary file format on disk.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatBinary             // msgpack-encoded Dictionary
	FormatText               // TSV: shortform header then longform<TAB>grounding lines
)

// FormatInfo describes one supported format.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extension   string
	MinSize     int64
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatBinary: {
		Format:      FormatBinary,
		Description: "Binary Grounding Dictionary",
		Extension:   ".bin",
		MinSize:     4,
	},
	FormatText: {
		Format:      FormatText,
		Description: "Text Grounding Dictionary",
		Extension:   ".tsv",
		MinSize:     1,
	},
}

// DetectFormat maps a file path to its format, validating that the file
// exists and is at least plausibly large enough.
func DetectFormat(path string) (FileFormat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("dictionary: stat %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, fi := range supportedFormats {
		if fi.Extension != ext {
			continue
		}
		if info.Size() < fi.MinSize {
			return FormatUnknown, fmt.Errorf("dictionary: %s is too small (%d bytes) for %s",
				path, info.Size(), fi.Description)
		}
		return fi.Format, nil
	}
	return FormatUnknown, fmt.Errorf("dictionary: unrecognized extension %s for %s", ext, path)
}
