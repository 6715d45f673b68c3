package bucketizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_DropsShortTokensAndSplitsOnDelimiters(t *testing.T) {
	// Arrange
	body := "error: id a, code 7"

	// Act
	tokens := tokenize(body)

	// Assert: single-character tokens are dropped; delimiters split words
	// apart; numeric values generalize to "int64".
	for _, tok := range tokens {
		assert.Greater(t, len(tok), 1, "tokenize kept a token of length <= 1: %q", tok)
	}
	assert.Contains(t, tokens, "error")
	assert.Contains(t, tokens, "int64")
}

func TestGeneralize_Guid(t *testing.T) {
	// Arrange
	w := "123e4567-e89b-12d3-a456-426614174000"

	// Act + Assert
	assert.Equal(t, "guid", generalize(w))
}

// TestTokenize_GuidFoldsDespiteDashDelimiter is scenario S1: a GUID must
// still fold to the "guid" token when it reaches tokenize through the
// normal delimiter-splitting path, not just when generalize is called on
// the pre-split whole word directly.
func TestTokenize_GuidFoldsDespiteDashDelimiter(t *testing.T) {
	// Arrange
	body := "request 5f3b2c10-1111-4aaa-9000-000000000001 failed"

	// Act
	tokens := tokenize(body)

	// Assert
	assert.Contains(t, tokens, "guid")
	for _, tok := range tokens {
		assert.NotContains(t, tok, "5f3b2c10", "the GUID must not survive as a raw hex fragment")
	}
}

// TestTokenize_HyphenatedWordStillSplits confirms the GUID carve-out
// doesn't disable ordinary "-" delimiter splitting for non-GUID text.
func TestTokenize_HyphenatedWordStillSplits(t *testing.T) {
	// Arrange + Act
	tokens := tokenize("a well-known endpoint")

	// Assert
	assert.Contains(t, tokens, "well")
	assert.Contains(t, tokens, "known")
}

func TestGeneralize_SignedBeforeUnsigned(t *testing.T) {
	assert.Equal(t, "int64", generalize("-42"))
}

func TestGeneralize_Double(t *testing.T) {
	assert.Equal(t, "double", generalize("3.14"))
}

func TestGeneralize_NonPrimitiveUnchanged(t *testing.T) {
	assert.Equal(t, "hello", generalize("hello"))
}

func TestJaccard_IdenticalSets(t *testing.T) {
	// Arrange
	a := ngrams(tokenize("the quick brown fox jumps over lazy"))

	// Act + Assert
	assert.Equal(t, float64(1), jaccard(a, a))
}

func TestJaccard_EmptyUnionIsZero(t *testing.T) {
	// Arrange
	empty := map[string]struct{}{}

	// Act + Assert
	assert.Zero(t, jaccard(empty, empty))
}

func TestNgramCache_Memoizes(t *testing.T) {
	// Arrange
	c := newNgramCache()
	body := "a stable body used twice"

	// Act
	first := c.get(body)
	second := c.get(body)

	// Assert: a repeated lookup returns the same contents, so memoization
	// does not change the result.
	require.Len(t, second, len(first))
	for k := range first {
		assert.Contains(t, second, k)
	}
}
