package dictionary_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/dictionary"
)

const sample = "dog\n  cat \n\nCat\nit's\ncafé\ncats\ndog\n"

// TestRead_Filters covers each filter independently and combined.
func TestRead_Filters(t *testing.T) {
	cases := []struct {
		name string
		opts []dictionary.Option
		want []string
	}{
		{"NoFilters", nil, []string{"dog", "cat", "Cat", "it's", "café", "cats", "dog"}},
		{"Lowercase", []dictionary.Option{dictionary.WithLowercaseOnly()}, []string{"dog", "cat", "it's", "café", "cats", "dog"}},
		{"Letters", []dictionary.Option{dictionary.WithLettersOnly()}, []string{"dog", "cat", "Cat", "café", "cats", "dog"}},
		{"Length", []dictionary.Option{dictionary.WithLengthRange(4, 4)}, []string{"it's", "café", "cats"}},
		{"MinOnly", []dictionary.Option{dictionary.WithLengthRange(4, 0)}, []string{"it's", "café", "cats"}},
		{"Combined", []dictionary.Option{
			dictionary.WithLowercaseOnly(),
			dictionary.WithLettersOnly(),
			dictionary.WithLengthRange(3, 3),
		}, []string{"dog", "cat", "dog"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dictionary.Read(strings.NewReader(sample), tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLoad reads a file from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	got, err := dictionary.Load(path, dictionary.WithLengthRange(3, 3))
	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "cat", "Cat", "dog"}, got)
}

// TestLoad_Missing surfaces ErrSource.
func TestLoad_Missing(t *testing.T) {
	_, err := dictionary.Load(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, dictionary.ErrSource), "got %v", err)
}

// errReader fails after its first read.
type errReader struct{ done bool }

func (e *errReader) Read(p []byte) (int, error) {
	if e.done {
		return 0, errors.New("disk on fire")
	}
	e.done = true

	return copy(p, "dog\ncat"), nil
}

// TestRead_PartialFailure returns the words read so far and ErrSource.
// The scanner flushes the unterminated "cat" when the reader fails.
func TestRead_PartialFailure(t *testing.T) {
	got, err := dictionary.Read(&errReader{})
	assert.True(t, errors.Is(err, dictionary.ErrSource))
	assert.Equal(t, []string{"dog", "cat"}, got)
}
