package retrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetriePattern(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)
	for _, term := range []string{"abc", "foo", "abs"} {
		r.Add(term)
	}

	assert.Equal(t, "(?:ab[cs]|foo)", r.Pattern())
	assert.Equal(t, `\b(?:ab[cs]|foo)\b`, r.Expression())
	assert.Equal(t, 3, r.Trie().Len())
}

func TestRetrieExpression(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"word boundary", func(*Config) {}, `\b(?:ab[cs]|foo)\b`},
		{"substrings", func(c *Config) { c.MatchSubstrings = true }, `(?:ab[cs]|foo)`},
		{"no boundary", func(c *Config) { c.WordBoundary = "" }, `(?:ab[cs]|foo)`},
		{"custom delimiter", func(c *Config) { c.WordBoundary = " " }, `(?<= )(?:ab[cs]|foo)(?= )`},
		{"substrings override delimiter", func(c *Config) {
			c.WordBoundary = " "
			c.MatchSubstrings = true
		}, `(?:ab[cs]|foo)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			r, err := New(config)
			require.NoError(t, err)
			r.Add("abc", "foo", "abs")
			assert.Equal(t, tt.want, r.Expression())

			m, err := r.Compile()
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestRetrieCompileWith(t *testing.T) {
	r, err := New(DefaultConfig())
	require.NoError(t, err)
	r.Add("abc", "foo", "abs")

	substr, err := r.CompileWith("", DefaultFlags)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3}}, substr.FindAllStringIndex("foobar", -1))
	assert.Equal(t, [][]int{{1, 4}}, substr.FindAllStringIndex("afoobar", -1))

	sensitive, err := r.CompileWith("", FlagNone)
	require.NoError(t, err)
	assert.False(t, sensitive.MatchString("a fOObar"))

	words, err := r.CompileWith(WordBoundary, DefaultFlags)
	require.NoError(t, err)
	assert.False(t, words.MatchString("a foobar"))
	assert.Equal(t, [][]int{{2, 5}}, words.FindAllStringIndex("a foo bar", -1))

	// The override is temporary.
	assert.Equal(t, `\b(?:ab[cs]|foo)\b`, r.Expression())

	_, err = r.CompileWith("(", DefaultFlags)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "WordBoundary", cfgErr.Field)
}

func TestQuoteBoundary(t *testing.T) {
	assert.Equal(t, " ", QuoteBoundary(" "))
	assert.Equal(t, `\.`, QuoteBoundary("."))
	assert.Equal(t, `\|`, QuoteBoundary("|"))

	config := DefaultConfig()
	config.WordBoundary = QuoteBoundary(".")
	bl, err := NewBlacklist([]string{"abc"}, config)
	require.NoError(t, err)
	assert.True(t, bl.IsBlacklisted("x.abc.y"))
	assert.False(t, bl.IsBlacklisted("x abc y"))
}
