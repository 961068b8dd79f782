package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("with frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nSubject: Hello {{.Name}}\n---\nBody text\n"))
		require.NoError(t, err)
		require.Equal(t, "Hello {{.Name}}", tmpl.Metadata["Subject"])
		require.Equal(t, "Body text\n", tmpl.Body)
	})

	t.Run("without frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("Just a body"))
		require.NoError(t, err)
		require.Empty(t, tmpl.Metadata)
		require.Equal(t, "Just a body", tmpl.Body)
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\nSubject: broken\n"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\n\t:bad\n---\nbody"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\r\nSubject: CRLF\r\n---\r\nbody"))
		require.NoError(t, err)
		require.Equal(t, "CRLF", tmpl.Metadata["Subject"])
		require.Equal(t, "body", tmpl.Body)
	})
}
