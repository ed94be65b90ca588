// Package format provides source format detection for aeon3md.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported timeline source format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Aeon indicates a native Aeon Timeline 3 project (.aeon).
	Aeon
	// CSV indicates an Aeon Timeline 3 CSV export.
	CSV
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Aeon:
		return "Aeon"
	case CSV:
		return "CSV"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Aeon:
		return ".aeon"
	case CSV:
		return ".csv"
	default:
		return ""
	}
}

// Detect determines the source format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".aeon":
		return Aeon
	case ".csv":
		return CSV
	default:
		return Unknown
	}
}

// magicLen is the number of leading bytes inspected by DetectFromMagic.
const magicLen = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFromMagic inspects leading bytes.
//
// A project file is a binary container: it holds control bytes or invalid
// UTF-8 around its embedded JSON. A CSV export is plain text whose first
// line has a comma-separated header. Anything else is Unknown.
func DetectFromMagic(data []byte) Format {
	if len(data) > magicLen {
		data = data[:magicLen]
	}
	if len(data) == 0 {
		return Unknown
	}

	text := bytes.TrimPrefix(data, utf8BOM)
	if isBinary(text) {
		return Aeon
	}

	firstLine := text
	if i := bytes.IndexAny(text, "\r\n"); i >= 0 {
		firstLine = text[:i]
	}
	if bytes.IndexByte(firstLine, ',') >= 0 {
		return CSV
	}
	return Unknown
}

// isBinary reports whether data contains NUL or other C0 control bytes
// outside common whitespace, or bytes that are not valid UTF-8. A rune
// truncated by the sniff window is tolerated.
func isBinary(data []byte) bool {
	for i := 0; i < len(data); {
		c := data[i]
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			return true
		}
		if c < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(data[i:]) {
				return false
			}
			return true
		}
		i += size
	}
	return false
}

// DetectFromReader inspects the start of the content to determine the format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, magicLen)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
