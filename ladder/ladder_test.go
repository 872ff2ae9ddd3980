package ladder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// TestValidate covers the precondition taxonomy.
func TestValidate(t *testing.T) {
	cases := []struct {
		name           string
		source, target string
		err            error
	}{
		{"OK", "dog", "cat", nil},
		{"EmptySource", "", "cat", ladder.ErrEmptyWord},
		{"EmptyTarget", "dog", "", ladder.ErrEmptyWord},
		{"Mismatch", "dog", "cats", ladder.ErrLengthMismatch},
		{"RuneLength", "café", "cafe", nil},
		{"Latin1Source", "\xe9b", "ab", ladder.ErrInvalidEncoding},
		{"Latin1Target", "ab", "\xe8c", ladder.ErrInvalidEncoding},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ladder.Validate(tc.source, tc.target)
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
			assert.True(t, errors.Is(err, ladder.ErrInvalidInput), "must wrap ErrInvalidInput")
		})
	}
}

// TestFindShortestTransformation_InvalidUTF8 keeps Latin-1 bytes from
// collapsing into one U+FFFD position and forging a single-letter step.
func TestFindShortestTransformation_InvalidUTF8(t *testing.T) {
	_, err := ladder.FindShortestTransformation(nil, "\xe9b", "\xe8c")
	assert.True(t, errors.Is(err, ladder.ErrInvalidEncoding), "got %v", err)
	assert.True(t, errors.Is(err, ladder.ErrInvalidInput))

	// xb → \xe9b → \xe8c → yc would look like three moves if the
	// invalid words shared the pattern "\uFFFD*".
	res, err := ladder.FindShortestTransformation([]string{"\xe9b", "\xe8c"}, "xb", "yc")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

// TestFindShortestTransformation_Cases runs the documented scenarios.
func TestFindShortestTransformation_Cases(t *testing.T) {
	t.Run("Connected", func(t *testing.T) {
		res, err := ladder.FindShortestTransformation([]string{"dog", "cog", "cot", "cat"}, "dog", "cat")
		require.NoError(t, err)
		require.True(t, res.Found)
		assert.Equal(t, 3, res.Moves())
		assert.Equal(t, "dog", res.Path[0])
		assert.Equal(t, "cat", res.Path[3])
		assert.NoError(t, res.Path.Valid())
	})
	t.Run("Disconnected", func(t *testing.T) {
		res, err := ladder.FindShortestTransformation([]string{"dog", "cat"}, "dog", "cat")
		require.NoError(t, err)
		assert.False(t, res.Found)
		assert.Nil(t, res.Path)
		assert.Equal(t, -1, res.Moves())
	})
	t.Run("SourceIsTarget", func(t *testing.T) {
		res, err := ladder.FindShortestTransformation(nil, "dog", "dog")
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Equal(t, bfs.Path{"dog"}, res.Path)
		assert.Equal(t, 0, res.Moves())
	})
	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := ladder.FindShortestTransformation([]string{"dog"}, "dog", "cats")
		assert.True(t, errors.Is(err, ladder.ErrLengthMismatch))
	})
	t.Run("WildcardSource", func(t *testing.T) {
		_, err := ladder.FindShortestTransformation([]string{"dog"}, "d*g", "dog")
		assert.True(t, errors.Is(err, ladder.ErrInvalidInput))
		assert.True(t, errors.Is(err, wordgraph.ErrInvalidInjection))
	})
}

// TestBuild_InjectsEndpoints makes missing source and target searchable.
func TestBuild_InjectsEndpoints(t *testing.T) {
	dict := []string{"cog", "cot"}
	g, err := ladder.Build(dict, "dog", "cat")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"dog", "cat"}, g.Injected())

	res, err := ladder.Search(context.Background(), g, "dog", "cat")
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, bfs.Path{"dog", "cog", "cot", "cat"}, res.Path)
	// injected words are the only non-dictionary entries
	for _, w := range res.Path[1 : len(res.Path)-1] {
		assert.Contains(t, dict, w)
	}
}

// TestBuild_ReuseForManySearches shares one graph across searches.
func TestBuild_ReuseForManySearches(t *testing.T) {
	dict := []string{"dog", "cog", "cot", "cat", "cut", "hut"}
	g, err := ladder.Build(dict, "dog", "hut")
	require.NoError(t, err)

	for _, tc := range []struct {
		s, t  string
		moves int
	}{
		{"dog", "hut", 4},
		{"cat", "cut", 1},
		{"cog", "cog", 0},
	} {
		res, err := ladder.Search(context.Background(), g, tc.s, tc.t)
		require.NoError(t, err)
		assert.Equal(t, tc.moves, res.Moves(), "%s → %s", tc.s, tc.t)
	}
}

// TestSearch_Errors rejects bad input and words outside the graph.
func TestSearch_Errors(t *testing.T) {
	g, err := ladder.Build([]string{"cog"}, "dog", "cat")
	require.NoError(t, err)

	_, err = ladder.Search(context.Background(), nil, "dog", "cat")
	assert.True(t, errors.Is(err, bfs.ErrGraphNil))

	_, err = ladder.Search(context.Background(), g, "dog", "cats")
	assert.True(t, errors.Is(err, ladder.ErrLengthMismatch))

	_, err = ladder.Search(context.Background(), g, "dog", "zzz")
	assert.True(t, errors.Is(err, bfs.ErrTargetNotFound))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ladder.Search(ctx, g, "dog", "cat")
	assert.True(t, errors.Is(err, context.Canceled))
}

// TestSearch_DeterministicLength repeats a search with ties.
func TestSearch_DeterministicLength(t *testing.T) {
	dict := []string{"dog", "cog", "dot", "cot", "cat"}
	a, err := ladder.FindShortestTransformation(dict, "dog", "cat")
	require.NoError(t, err)
	b, err := ladder.FindShortestTransformation(dict, "dog", "cat")
	require.NoError(t, err)
	assert.Equal(t, a.Moves(), b.Moves())
	assert.Equal(t, 3, a.Moves())
}
