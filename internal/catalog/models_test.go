package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validPropertyInput() PropertyInput {
	return PropertyInput{
		Title:        "Sunny loft on Maple Street",
		Price:        425000,
		Location:     "Springfield",
		Beds:         2,
		Baths:        1.5,
		Sqft:         980,
		Status:       StatusForSale,
		PropertyType: "apartment",
	}
}

func TestPropertyInputValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validPropertyInput().Validate())

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		in := validPropertyInput()
		in.Title = "   "
		require.ErrorIs(t, in.Validate(), ErrInvalidInput)
	})

	t.Run("missing location", func(t *testing.T) {
		t.Parallel()

		in := validPropertyInput()
		in.Location = ""
		require.ErrorIs(t, in.Validate(), ErrInvalidInput)
	})

	t.Run("negative price", func(t *testing.T) {
		t.Parallel()

		in := validPropertyInput()
		in.Price = -1
		require.ErrorIs(t, in.Validate(), ErrInvalidInput)
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()

		in := validPropertyInput()
		in.Status = "Pending"
		require.ErrorIs(t, in.Validate(), ErrInvalidInput)
	})

	t.Run("all lifecycle statuses accepted", func(t *testing.T) {
		t.Parallel()

		for _, status := range []string{StatusForSale, StatusForRent, StatusSold, StatusRented} {
			in := validPropertyInput()
			in.Status = status
			require.NoError(t, in.Validate())
		}
	})
}

func TestPropertyUpdateValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, PropertyUpdate{}.Validate())
	require.NoError(t, PropertyUpdate{Status: ptr(StatusSold)}.Validate())
	require.ErrorIs(t, PropertyUpdate{Status: ptr("Archived")}.Validate(), ErrInvalidInput)
	require.ErrorIs(t, PropertyUpdate{Title: ptr("  ")}.Validate(), ErrInvalidInput)
	require.ErrorIs(t, PropertyUpdate{Price: ptr(int64(-5))}.Validate(), ErrInvalidInput)
}

func TestBlogPostInputSanitized(t *testing.T) {
	t.Parallel()

	in := BlogPostInput{
		Title:   "Staging tips",
		Excerpt: "<b>Bold</b> claims",
		Content: `<h2>Staging</h2><script>alert("x")</script><p>Declutter first.</p>`,
	}
	require.NoError(t, in.Validate())

	clean := in.sanitized()
	require.NotContains(t, clean.Content, "<script>")
	require.Contains(t, clean.Content, "<h2>Staging</h2>")
	require.Contains(t, clean.Content, "<p>Declutter first.</p>")
	require.Equal(t, "Bold claims", clean.Excerpt)
}

func TestBlogPostUpdateValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, BlogPostUpdate{}.Validate())
	require.ErrorIs(t, BlogPostUpdate{Title: ptr("")}.Validate(), ErrInvalidInput)
	require.ErrorIs(t, BlogPostUpdate{Content: ptr(" ")}.Validate(), ErrInvalidInput)

	upd := BlogPostUpdate{Content: ptr(`<p>ok</p><script>bad()</script>`)}.sanitized()
	require.NotContains(t, *upd.Content, "script")
}
