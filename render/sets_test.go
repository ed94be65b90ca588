package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter88213/aeon3md/internal/errors"
)

func TestBuiltinSets(t *testing.T) {
	assert.Equal(t, []string{
		"_outline",
		"_full_synopsis",
		"_brief_synopsis",
		"_chapter_overview",
		"_character_sheets",
		"_location_sheets",
		"_report",
	}, Suffixes())

	for _, set := range Builtin() {
		assert.NotEmpty(t, set.Description, set.Suffix)
	}

	outline, err := Lookup("_outline")
	require.NoError(t, err)
	full, err := Lookup("_full_synopsis")
	require.NoError(t, err)
	assert.Equal(t, full.Templates, outline.Templates)
}

func TestBuiltinIsCopied(t *testing.T) {
	sets := Builtin()
	sets[0].Templates.Scene = "changed"

	set, err := Lookup(sets[0].Suffix)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", set.Templates.Scene)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("_nope")
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), `"_nope"`)
}

const customSet = `suffix: _scene_list
description: Scene list
templates:
  chapter: "## $Title\n\n"
  scene: "- $Title\n"
  scene_divider: ""
`

func TestParseSet(t *testing.T) {
	set, err := ParseSet([]byte(customSet))
	require.NoError(t, err)

	assert.Equal(t, "_scene_list", set.Suffix)
	assert.Equal(t, "Scene list", set.Description)
	assert.Equal(t, "## $Title\n\n", set.Templates.Chapter)
	assert.Equal(t, "- $Title\n", set.Templates.Scene)
	assert.Empty(t, set.Templates.Part)
}

func TestParseSetErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		category errors.ErrorCategory
	}{
		{"empty", "", errors.CategoryValidation},
		{"missing suffix", "description: x\n", errors.CategoryValidation},
		{"unknown field", "suffix: _x\ntemplates:\n  sceen: x\n", errors.CategoryFileParsing},
		{"not yaml", "suffix: [\n", errors.CategoryFileParsing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSet([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.category, errors.CategoryOf(err))
		})
	}
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customSet), 0o644))

	set, err := LoadSet(path)
	require.NoError(t, err)
	assert.Equal(t, "_scene_list", set.Suffix)

	_, err = LoadSet(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("suffix: [\n"), 0o644))
	_, err = LoadSet(bad)
	var ee *errors.EnhancedError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, bad, ee.Context["path"])
}
