package import_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bm/domain"
	"bm/utils/errors"
)

func TestHackerNewsImportGateway_Import(t *testing.T) {
	initTestLogger()

	userID := uuid.New()
	settings := &domain.UserSettings{UserID: userID, HNUsername: "pg"}

	t.Run("MissingUsername", func(t *testing.T) {
		gateway := NewHackerNewsImportGateway(nil, http.DefaultClient, nil, "http://unused")

		_, err := gateway.Import(context.Background(), userID, &domain.UserSettings{UserID: userID})

		require.Error(t, err)
		var appErr *errors.AppContextError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, string(errors.ErrCodeMissingCredential), appErr.Code)
	})

	t.Run("ExistingFavourite_StillTagged", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/users/pg", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"links": [{"url": "https://example.com/essay", "title": "An essay"}]}`))
		}))
		defer server.Close()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		linkID := uuid.New()
		tagID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT.*FROM links WHERE user_id = \$1 AND url = \$2`).
			WithArgs(userID, "https://example.com/essay").
			WillReturnRows(emptyLinkRows().AddRow(linkID, &userID, "https://example.com/essay", "An essay", "", now, now))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO tags.*ON CONFLICT \(slug\) DO UPDATE`).
			WithArgs(pgxmock.AnyArg(), "hn-fav", "hn-fav").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(tagID))
		mock.ExpectExec(`INSERT INTO link_tags`).
			WithArgs(linkID, tagID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		gateway := NewHackerNewsImportGateway(mock, server.Client(), nil, server.URL)

		count, err := gateway.Import(context.Background(), userID, settings)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
