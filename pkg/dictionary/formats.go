package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat identifies the supported input file kinds.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatWordList             // newline-delimited word list
	FormatEtymology            // word -> tag list JSON table
)

// FormatInfo describes one supported format.
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // minimum plausible file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatWordList: {
		Format:      FormatWordList,
		Description: "Newline-Delimited Word List",
		Extensions:  []string{".txt"},
		MinSize:     1,
	},
	FormatEtymology: {
		Format:      FormatEtymology,
		Description: "Etymology JSON Table",
		Extensions:  []string{".json"},
		MinSize:     2, // at least "{}"
	},
}

// ValidateFileFormat checks a file against the expected format before
// the loaders touch it: size, extension and a cheap shape check.
func ValidateFileFormat(filename string, expected FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expected]
	if !exists {
		return fmt.Errorf("unknown format: %v", expected)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, e := range formatInfo.Extensions {
		if ext == e {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}

	if expected == FormatEtymology {
		return validateJSONShape(filename)
	}
	return nil
}

// validateJSONShape checks the etymology file starts like a JSON object.
func validateJSONShape(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	buf := make([]byte, 64)
	n, err := file.Read(buf)
	if err != nil {
		return fmt.Errorf("failed to read from %s: %w", filename, err)
	}
	head := strings.TrimSpace(string(buf[:n]))
	if !strings.HasPrefix(head, "{") {
		return fmt.Errorf("file %s does not look like a JSON object", filename)
	}

	log.Debugf("Etymology file %s validated", filename)
	return nil
}

// DetectFileFormat guesses the format of a file from its extension.
func DetectFileFormat(filename string) (FileFormat, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		if err := ValidateFileFormat(filename, FormatWordList); err == nil {
			return FormatWordList, nil
		}
	case ".json":
		if err := ValidateFileFormat(filename, FormatEtymology); err == nil {
			return FormatEtymology, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// GetFormatInfo returns the description of a specific format.
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
