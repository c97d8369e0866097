package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvoronova/bookshelf-backend/internal/domain"
	"github.com/nvoronova/bookshelf-backend/internal/models"
)

func TestBookFilterSQL(t *testing.T) {
	cond, args := bookFilterSQL(models.BookFilters{})
	require.Empty(t, cond)
	require.Empty(t, args)

	genre := domain.GenreScience
	from, to := 1960, 1970
	cond, args = bookFilterSQL(models.BookFilters{
		Q:        "  dune  ",
		Genre:    &genre,
		YearFrom: &from,
		YearTo:   &to,
	})
	require.Equal(t,
		" WHERE (title ILIKE $1 OR author ILIKE $1) AND genre=$2 AND published_year >= $3 AND published_year <= $4",
		cond)
	require.Equal(t, []any{"%dune%", genre, from, to}, args)
}

func TestBookFilterSQLNumbersFollowPresence(t *testing.T) {
	// placeholders renumber when earlier filters are absent
	from := 1960
	cond, args := bookFilterSQL(models.BookFilters{YearFrom: &from})
	require.Equal(t, " WHERE published_year >= $1", cond)
	require.Equal(t, []any{from}, args)
}

func TestItemFilterSQL(t *testing.T) {
	cond, args := itemFilterSQL(models.ItemFilters{})
	require.Empty(t, cond)
	require.Empty(t, args)

	cond, args = itemFilterSQL(models.ItemFilters{UserID: "u1", Q: "lamp"})
	require.Equal(t, " WHERE user_id=$1 AND title ILIKE $2", cond)
	require.Equal(t, []any{"u1", "%lamp%"}, args)
}

func TestReviewFilterSQL(t *testing.T) {
	cond, args := reviewFilterSQL(models.ReviewFilters{})
	require.Empty(t, cond)
	require.Empty(t, args)

	cond, args = reviewFilterSQL(models.ReviewFilters{BookID: "b1"})
	require.Equal(t, " WHERE book_id=$1", cond)
	require.Equal(t, []any{"b1"}, args)
}

func TestUserFilterSQL(t *testing.T) {
	cond, args := userFilterSQL(models.UserFilters{Q: "   "})
	require.Empty(t, cond)
	require.Empty(t, args)

	cond, args = userFilterSQL(models.UserFilters{Q: "ali"})
	require.Equal(t, " WHERE username ILIKE $1", cond)
	require.Equal(t, []any{"%ali%"}, args)
}

func TestJobFilterSQL(t *testing.T) {
	cond, args := jobFilterSQL(models.JobFilters{})
	require.Empty(t, cond)
	require.Empty(t, args)

	status := models.JobFailed
	cond, args = jobFilterSQL(models.JobFilters{Status: &status})
	require.Equal(t, " WHERE status=$1", cond)
	require.Equal(t, []any{status}, args)
}
