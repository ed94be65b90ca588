package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter88213/aeon3md/internal/errors"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "binary around payload",
			data: []byte("\x00\x01AEON\x02{\"a\":{\"b\":1}}\x00\xff trailing {"),
			want: `{"a":{"b":1}}`,
		},
		{
			name: "first region only",
			data: []byte(`{"x":1}{"y":2}`),
			want: `{"x":1}`,
		},
		{
			name: "empty object",
			data: []byte("prefix{}suffix"),
			want: "{}",
		},
		{
			name: "multi-byte text",
			data: []byte("\x00{\"title\":\"Grüße\"}"),
			want: `{"title":"Grüße"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Bytes(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBytesCorrupted(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"no braces", []byte("no json here")},
		{"unbalanced", []byte(`{"a":{"b":1}`)},
		{"empty", nil},
		{"closing only", []byte("}}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Bytes(tt.data)
			require.Error(t, err)
			assert.True(t, errors.IsCategory(err, errors.CategoryCorruption), "category %q", errors.CategoryOf(err))
		})
	}
}

func TestBytesInvalidUTF8(t *testing.T) {
	_, err := Bytes([]byte("{\"a\":\"\xff\xfe\"}"))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryEncoding))
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "novel.aeon")
	require.NoError(t, os.WriteFile(path, []byte("\x00\x00{\"core\":{}}\x00"), 0o644))

	got, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, `{"core":{}}`, got)
}

func TestFileNotFound(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.aeon"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestFileCorruptedCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.aeon")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

	_, err := File(path)
	require.Error(t, err)

	var ee *errors.EnhancedError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, errors.CategoryCorruption, ee.Category)
	assert.Equal(t, path, ee.GetContext()["path"])
	assert.Equal(t, "scan", ee.GetComponent())
}
