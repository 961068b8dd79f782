package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPropertyFilterWhereClause(t *testing.T) {
	t.Parallel()

	t.Run("zero filter", func(t *testing.T) {
		t.Parallel()

		where, args := PropertyFilter{}.whereClause()
		require.Empty(t, where)
		require.Empty(t, args)
	})

	t.Run("single condition", func(t *testing.T) {
		t.Parallel()

		where, args := PropertyFilter{Status: StatusForSale}.whereClause()
		require.Equal(t, " WHERE status = $1", where)
		require.Equal(t, []any{StatusForSale}, args)
	})

	t.Run("all conditions keep positional order", func(t *testing.T) {
		t.Parallel()

		filter := PropertyFilter{
			Status:       StatusForRent,
			PropertyType: "apartment",
			MinPrice:     ptr(int64(1000)),
			MaxPrice:     ptr(int64(2500)),
			Beds:         ptr(2),
			Baths:        ptr(1.5),
		}

		where, args := filter.whereClause()
		require.Equal(t,
			" WHERE status = $1 AND property_type = $2 AND price >= $3 AND price <= $4 AND beds >= $5 AND baths >= $6",
			where,
		)
		require.Equal(t, []any{StatusForRent, "apartment", int64(1000), int64(2500), 2, 1.5}, args)
	})

	t.Run("zero-valued pointer bounds still filter", func(t *testing.T) {
		t.Parallel()

		where, args := PropertyFilter{MinPrice: ptr(int64(0))}.whereClause()
		require.Equal(t, " WHERE price >= $1", where)
		require.Equal(t, []any{int64(0)}, args)
	})
}
