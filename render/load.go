package render

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peter88213/aeon3md/internal/errors"
)

// LoadSet reads a template set from a YAML file:
//
//	suffix: _scene_list
//	description: Scene list
//	templates:
//	  chapter: "## $Title\n\n"
//	  scene: "- $Title ($ScDate)\n"
//
// Template fields that are not given stay empty, so their units are skipped.
// Unknown fields are rejected.
func LoadSet(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, errors.Newf("template file %q not found", path).
				Component(component).
				Category(errors.CategoryNotFound).
				Context("path", path).
				Build()
		}
		return Set{}, errors.FileError(err, path)
	}

	set, err := ParseSet(data)
	if err != nil {
		var ee *errors.EnhancedError
		if errors.As(err, &ee) {
			ee.Context["path"] = path
		}
		return Set{}, err
	}
	return set, nil
}

// ParseSet decodes a YAML template set.
func ParseSet(data []byte) (Set, error) {
	var set Set
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, errors.New(err).
			Component(component).
			Category(errors.CategoryFileParsing).
			Context("operation", "parse_template_set").
			Build()
	}
	if set.Suffix == "" {
		return Set{}, errors.Newf("template set has no suffix").
			Component(component).
			Category(errors.CategoryValidation).
			Context("operation", "parse_template_set").
			Build()
	}
	return set, nil
}
