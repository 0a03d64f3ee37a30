package trie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Cat", "cat"},
		{"  Tight Lines  ", "tight lines"},
		{"go\t\tfishing", "go fishing"},
		{"go   fishing", "go fishing"},
		{"   ", ""},
		{"", ""},
		{"Café", "café"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "input %q", c.in)
	}
}

func TestInsert(t *testing.T) {
	t.Run("new and duplicate", func(t *testing.T) {
		tr := New()
		inserted, err := tr.Insert("Cat")
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = tr.Insert(" cat ")
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.Equal(t, 1, tr.Len())
		assert.Equal(t, 4, tr.Nodes())
	})

	t.Run("shared prefix allocates only the tail", func(t *testing.T) {
		tr := New()
		_, err := tr.Insert("car")
		require.NoError(t, err)
		_, err = tr.Insert("cart")
		require.NoError(t, err)
		assert.Equal(t, 5, tr.Nodes())
		assert.Equal(t, 2, tr.Len())
	})

	t.Run("prefix of existing entry", func(t *testing.T) {
		tr := New()
		_, err := tr.Insert("cart")
		require.NoError(t, err)
		nodes := tr.Nodes()
		inserted, err := tr.Insert("car")
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.Equal(t, nodes, tr.Nodes())
	})

	t.Run("blank input", func(t *testing.T) {
		tr := New()
		for _, s := range []string{"", "   ", "\t\n"} {
			_, err := tr.Insert(s)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
		assert.Equal(t, 0, tr.Len())
		assert.Equal(t, 1, tr.Nodes())
	})
}

func TestContains(t *testing.T) {
	tr := New()
	for _, w := range []string{"cart", "dog"} {
		_, err := tr.Insert(w)
		require.NoError(t, err)
	}

	assert.True(t, tr.Contains("CART"))
	assert.True(t, tr.Contains("  dog"))
	assert.False(t, tr.Contains("car"), "strict prefix is not an entry")
	assert.False(t, tr.Contains("carts"))
	assert.False(t, tr.Contains(""))
	assert.False(t, tr.Contains("   "))

	_, err := tr.Insert("bird")
	require.NoError(t, err)
	assert.True(t, tr.Contains("cart"))
}

func TestSuggest(t *testing.T) {
	tr := New()
	for _, w := range []string{"cat", "car", "cap", "dog"} {
		_, err := tr.Insert(w)
		require.NoError(t, err)
	}

	t.Run("lexicographic order", func(t *testing.T) {
		got, err := tr.Suggest("ca", 20)
		require.NoError(t, err)
		assert.Equal(t, []string{"cap", "car", "cat"}, got)
	})

	t.Run("no match is empty", func(t *testing.T) {
		got, err := tr.Suggest("xyz", 20)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("exact prefix comes first", func(t *testing.T) {
		tr := New()
		for _, w := range []string{"cart", "car", "carbon"} {
			_, err := tr.Insert(w)
			require.NoError(t, err)
		}
		got, err := tr.Suggest("car", 20)
		require.NoError(t, err)
		assert.Equal(t, []string{"car", "carbon", "cart"}, got)
	})

	t.Run("limit bounds results", func(t *testing.T) {
		got, err := tr.Suggest("c", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"cap", "car"}, got)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := tr.Suggest("", 5)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = tr.Suggest("  ", 5)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = tr.Suggest("ca", 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = tr.Suggest("ca", -3)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("phrases keep interior spaces", func(t *testing.T) {
		tr := New()
		_, err := tr.Insert("Tight Lines Today")
		require.NoError(t, err)
		_, err = tr.Insert("tightrope")
		require.NoError(t, err)
		got, err := tr.Suggest("tight l", 5)
		require.NoError(t, err)
		assert.Equal(t, []string{"tight lines today"}, got)
	})
}

func TestSuggestNeverExceedsLimit(t *testing.T) {
	tr := New()
	for i := 0; i < 500; i++ {
		_, err := tr.Insert(fmt.Sprintf("word%03d", i))
		require.NoError(t, err)
	}
	for _, limit := range []int{1, 7, 20, 499, 500, 1000} {
		got, err := tr.Suggest("w", limit)
		require.NoError(t, err)
		want := limit
		if want > 500 {
			want = 500
		}
		assert.Len(t, got, want)
	}

	first, err := tr.Suggest("word", 10)
	require.NoError(t, err)
	second, err := tr.Suggest("word", 10)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "word000", first[0])
}

func TestUnicodeOrdering(t *testing.T) {
	tr := New()
	for _, w := range []string{"été", "éclair", "étude"} {
		_, err := tr.Insert(w)
		require.NoError(t, err)
	}
	got, err := tr.Suggest("É", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"éclair", "étude", "été"}, got)
	assert.True(t, tr.Contains("été"))
}

func TestWalkAndReset(t *testing.T) {
	tr := New()
	for _, w := range []string{"b", "a", "ab", "c"} {
		_, err := tr.Insert(w)
		require.NoError(t, err)
	}

	var all []string
	tr.Walk(func(entry string) bool {
		all = append(all, entry)
		return true
	})
	assert.Equal(t, []string{"a", "ab", "b", "c"}, all)

	var firstTwo []string
	tr.Walk(func(entry string) bool {
		firstTwo = append(firstTwo, entry)
		return len(firstTwo) < 2
	})
	assert.Equal(t, []string{"a", "ab"}, firstTwo)
	assert.Equal(t, "[a ab b c]", tr.String())

	tr.Reset()
	assert.Equal(t, 0, tr.Len())
	assert.Equal(t, 1, tr.Nodes())
	assert.False(t, tr.Contains("a"))
	assert.Equal(t, "[]", tr.String())
}
