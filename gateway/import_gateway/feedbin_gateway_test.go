package import_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bm/domain"
	"bm/utils/errors"
)

func TestFeedbinImportGateway_Import(t *testing.T) {
	initTestLogger()

	userID := uuid.New()
	settings := &domain.UserSettings{UserID: userID, FeedbinUsername: "reader@example.com", FeedbinPassword: "s3cret"}

	t.Run("MissingCredential", func(t *testing.T) {
		gateway := NewFeedbinImportGateway(nil, http.DefaultClient, nil, "http://unused")

		_, err := gateway.Import(context.Background(), userID, &domain.UserSettings{UserID: userID})

		require.Error(t, err)
		var appErr *errors.AppContextError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, string(errors.ErrCodeMissingCredential), appErr.Code)
	})

	t.Run("RejectedCredentials_ReportsExpiredCredential", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		gateway := NewFeedbinImportGateway(nil, server.Client(), nil, server.URL)

		_, err := gateway.Import(context.Background(), userID, settings)

		require.Error(t, err)
		var appErr *errors.AppContextError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, string(errors.ErrCodeExpiredCredential), appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatusCode())
	})

	t.Run("NoStarredEntries_SkipsEntryFetch", func(t *testing.T) {
		entriesRequested := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v2/starred_entries.json":
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`[]`))
			case "/v2/entries.json":
				entriesRequested = true
				w.WriteHeader(http.StatusBadRequest)
			}
		}))
		defer server.Close()

		gateway := NewFeedbinImportGateway(nil, server.Client(), nil, server.URL)

		count, err := gateway.Import(context.Background(), userID, settings)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.False(t, entriesRequested)
	})

	t.Run("ManyStars_FetchesOnlyLastHundred", func(t *testing.T) {
		starred := make([]string, 0, 150)
		wantIDs := make([]string, 0, 100)
		for i := 1; i <= 150; i++ {
			starred = append(starred, fmt.Sprintf("%d", i))
			if i > 50 {
				wantIDs = append(wantIDs, fmt.Sprintf("%d", i))
			}
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/v2/starred_entries.json":
				w.Write([]byte("[" + strings.Join(starred, ",") + "]"))
			case "/v2/entries.json":
				assert.Equal(t, strings.Join(wantIDs, ","), r.URL.Query().Get("ids"))
				w.Write([]byte(`[]`))
			}
		}))
		defer server.Close()

		gateway := NewFeedbinImportGateway(nil, server.Client(), nil, server.URL)

		count, err := gateway.Import(context.Background(), userID, settings)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("NewEntry_TitleFallsBackToSummary", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "reader@example.com", user)
			assert.Equal(t, "s3cret", pass)

			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/v2/starred_entries.json":
				w.Write([]byte(`[4711]`))
			case "/v2/entries.json":
				assert.Equal(t, "4711", r.URL.Query().Get("ids"))
				w.Write([]byte(`[{
					"url": "https://blog.example.com/tuning",
					"title": "",
					"summary": "Tuning shared_buffers the hard way",
					"created_at": "2024-04-02T08:30:00Z"
				}]`))
			}
		}))
		defer server.Close()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		linkID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT.*FROM links WHERE user_id = \$1 AND url = \$2`).
			WithArgs(userID, "https://blog.example.com/tuning").
			WillReturnRows(emptyLinkRows())
		mock.ExpectQuery(`INSERT INTO links.*RETURNING id, user_id, url, title, note, added, updated`).
			WithArgs(pgxmock.AnyArg(), userID, "https://blog.example.com/tuning").
			WillReturnRows(emptyLinkRows().AddRow(linkID, &userID, "https://blog.example.com/tuning", "", "", now, now))
		mock.ExpectExec(`UPDATE links SET`).
			WithArgs("https://blog.example.com/tuning", "Tuning shared_buffers the hard way.", "",
				time.Date(2024, 4, 2, 8, 30, 0, 0, time.UTC), linkID, &userID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM link_tags WHERE link_id = \$1`).
			WithArgs(linkID).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		tagID := uuid.New()
		mock.ExpectQuery(`INSERT INTO tags.*ON CONFLICT \(slug\) DO UPDATE`).
			WithArgs(pgxmock.AnyArg(), "feedbin-starred", "feedbin-starred").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(tagID))
		mock.ExpectExec(`INSERT INTO link_tags`).
			WithArgs(linkID, tagID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		gateway := NewFeedbinImportGateway(mock, server.Client(), nil, server.URL)

		count, err := gateway.Import(context.Background(), userID, settings)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExistingEntry_NotCounted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/v2/starred_entries.json":
				w.Write([]byte(`[99]`))
			case "/v2/entries.json":
				w.Write([]byte(`[{"url": "https://blog.example.com/old", "title": "Old", "summary": "", "created_at": "2024-01-01T00:00:00Z"}]`))
			}
		}))
		defer server.Close()

		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		now := time.Now()
		mock.ExpectQuery(`SELECT.*FROM links WHERE user_id = \$1 AND url = \$2`).
			WithArgs(userID, "https://blog.example.com/old").
			WillReturnRows(emptyLinkRows().AddRow(uuid.New(), &userID, "https://blog.example.com/old", "Old", "", now, now))

		gateway := NewFeedbinImportGateway(mock, server.Client(), nil, server.URL)

		count, err := gateway.Import(context.Background(), userID, settings)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
