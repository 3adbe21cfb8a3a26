package value_objects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlainContent(t *testing.T) {
	t.Run("valid text", func(t *testing.T) {
		c, err := NewPlainContent("hello there")
		require.NoError(t, err)
		assert.Equal(t, ContentPlain, c.Kind)
		assert.Equal(t, "hello there", c.Text)
		assert.Zero(t, c.ArticleID)
		assert.True(t, c.IsValid())
	})

	t.Run("boundary length accepted", func(t *testing.T) {
		_, err := NewPlainContent(strings.Repeat("a", 10000))
		require.NoError(t, err)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := NewPlainContent("")
		require.Error(t, err)
	})

	t.Run("over-long text rejected", func(t *testing.T) {
		_, err := NewPlainContent(strings.Repeat("a", 10001))
		require.Error(t, err)
	})
}

func TestNewKBReferralContent(t *testing.T) {
	t.Run("valid referral", func(t *testing.T) {
		c, err := NewKBReferralContent("This may answer your question", 12, "Password resets")
		require.NoError(t, err)
		assert.Equal(t, ContentKBReferral, c.Kind)
		assert.Equal(t, uint(12), c.ArticleID)
		assert.Equal(t, "Password resets", c.ArticleTitle)
		assert.True(t, c.IsValid())
	})

	t.Run("missing article ID rejected", func(t *testing.T) {
		_, err := NewKBReferralContent("text", 0, "title")
		require.Error(t, err)
	})

	t.Run("missing article title rejected", func(t *testing.T) {
		_, err := NewKBReferralContent("text", 12, "")
		require.Error(t, err)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := NewKBReferralContent("", 12, "title")
		require.Error(t, err)
	})
}

func TestMessageContent_EncodeDecode(t *testing.T) {
	t.Run("plain round trip", func(t *testing.T) {
		c, err := NewPlainContent("hello")
		require.NoError(t, err)

		raw, err := c.Encode()
		require.NoError(t, err)

		got, err := DecodeMessageContent(raw)
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("referral round trip keeps article fields", func(t *testing.T) {
		c, err := NewKBReferralContent("see this", 7, "SSO setup")
		require.NoError(t, err)

		raw, err := c.Encode()
		require.NoError(t, err)

		got, err := DecodeMessageContent(raw)
		require.NoError(t, err)
		assert.Equal(t, uint(7), got.ArticleID)
		assert.Equal(t, "SSO setup", got.ArticleTitle)
	})

	t.Run("invalid content cannot encode", func(t *testing.T) {
		_, err := MessageContent{Kind: ContentKind("html"), Text: "x"}.Encode()
		require.Error(t, err)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := DecodeMessageContent("{not json")
		require.Error(t, err)
	})

	t.Run("decoded unknown kind rejected", func(t *testing.T) {
		_, err := DecodeMessageContent(`{"kind":"html","text":"x"}`)
		require.Error(t, err)
	})
}
