// Package scan extracts the JSON payload embedded in an Aeon Timeline 3
// project file.
//
// A project file is a binary container. The payload is the first balanced
// region delimited by '{' and '}' bytes; everything before and after it is
// ignored. Braces inside JSON strings are counted like any other brace.
package scan

import (
	"bytes"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/peter88213/aeon3md/internal/errors"
	"github.com/peter88213/aeon3md/internal/logger"
)

const component = "scan"

// File reads path and returns its JSON payload.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Newf("%q not found", path).
				Component(component).
				Category(errors.CategoryNotFound).
				Context("path", path).
				Build()
		}
		return "", errors.Newf("cannot read %q: %w", path, err).
			Component(component).
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}

	logger.Default().Module(component).Debug("project file read",
		logger.String("path", path),
		logger.Int("bytes", len(data)))

	payload, err := Bytes(data)
	if err != nil {
		var ee *errors.EnhancedError
		if errors.As(err, &ee) {
			ee.Context["path"] = path
		}
		return "", err
	}
	return payload, nil
}

// Bytes returns the first balanced {...} region of data, validated as UTF-8.
func Bytes(data []byte) (string, error) {
	region, ok := balancedRegion(data)
	if !ok {
		return "", errors.Newf("corrupted data").
			Component(component).
			Category(errors.CategoryCorruption).
			Context("bytes", len(data)).
			Build()
	}

	valid, _, err := transform.Bytes(encoding.UTF8Validator, region)
	if err != nil {
		return "", errors.Newf("cannot decode payload: %w", err).
			Component(component).
			Category(errors.CategoryEncoding).
			Context("bytes", len(region)).
			Build()
	}
	return string(valid), nil
}

// balancedRegion returns data from the first '{' through the '}' that
// brings the nesting depth back to zero. ok is false when data holds no
// '{' or the depth never returns to zero.
func balancedRegion(data []byte) (region []byte, ok bool) {
	start := bytes.IndexByte(data, '{')
	if start < 0 {
		return nil, false
	}
	depth := 0
	for i := start; i < len(data); i++ {
		switch data[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[start : i+1], true
			}
		}
	}
	return nil, false
}
