package aeon3md

import "github.com/peter88213/aeon3md/internal/errors"

// IsNotFound reports whether err means the source or a template file does
// not exist.
func IsNotFound(err error) bool {
	return errors.IsCategory(err, errors.CategoryNotFound)
}

// IsIO reports whether err is a read or write failure other than a missing
// file.
func IsIO(err error) bool {
	return errors.IsCategory(err, errors.CategoryFileIO)
}

// IsCorrupted reports whether the source holds no complete JSON payload.
func IsCorrupted(err error) bool {
	return errors.IsCategory(err, errors.CategoryCorruption)
}

// IsEncoding reports whether the source is not valid UTF-8.
func IsEncoding(err error) bool {
	return errors.IsCategory(err, errors.CategoryEncoding)
}

// IsParse reports whether the JSON or CSV source could not be parsed.
func IsParse(err error) bool {
	return errors.IsCategory(err, errors.CategoryFileParsing)
}

// IsStructure reports whether a required JSON section or CSV column is
// missing.
func IsStructure(err error) bool {
	return errors.IsCategory(err, errors.CategoryStructure)
}

// IsValueFormat reports whether a value, such as a date, has a format that
// cannot be interpreted.
func IsValueFormat(err error) bool {
	return errors.IsCategory(err, errors.CategoryValueFormat)
}

// IsValidation reports whether a request or a model was rejected, for
// example an unknown suffix or a broken reference.
func IsValidation(err error) bool {
	return errors.IsCategory(err, errors.CategoryValidation)
}

// IsConfiguration reports whether a settings file could not be read.
func IsConfiguration(err error) bool {
	return errors.IsCategory(err, errors.CategoryConfiguration)
}
