package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/estatehub/api/pkg/sanitizer"
)

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	t.Run("keeps formatting", func(t *testing.T) {
		t.Parallel()

		in := `<h2>Market update</h2><p>Prices <strong>rose</strong> this quarter.</p>`
		require.Equal(t, in, sanitizer.SanitizeHTML(in))
	})

	t.Run("strips scripts", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeHTML(`<p>hello</p><script>alert(1)</script>`)
		require.Equal(t, `<p>hello</p>`, out)
	})

	t.Run("strips event handlers", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.SanitizeHTML(`<p onclick="steal()">hello</p>`)
		require.Equal(t, `<p>hello</p>`, out)
	})
}

func TestStripHTML(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Lakeside Villa", sanitizer.StripHTML(`<b>Lakeside</b> Villa`))
}
