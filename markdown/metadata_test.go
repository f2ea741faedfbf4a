package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	t.Run("with front matter", func(t *testing.T) {
		meta, body, err := parseMetadata([]byte("---\ntitle: Intro\nkeywords: intro overview start\n---\n# Heading\n"))
		require.NoError(t, err)
		assert.Equal(t, "Intro", meta.Title)
		assert.Equal(t, "intro overview start", meta.Keywords)
		assert.Equal(t, "# Heading\n", string(body))
	})

	t.Run("without front matter", func(t *testing.T) {
		meta, body, err := parseMetadata([]byte("# Heading\n"))
		require.NoError(t, err)
		assert.Equal(t, Metadata{}, meta)
		assert.Equal(t, "# Heading\n", string(body))
	})

	t.Run("unterminated front matter is treated as content", func(t *testing.T) {
		input := "---\ntitle: Intro\n# Heading\n"
		meta, body, err := parseMetadata([]byte(input))
		require.NoError(t, err)
		assert.Equal(t, Metadata{}, meta)
		assert.Equal(t, input, string(body))
	})
}
