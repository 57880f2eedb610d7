package bm_db

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"bm/domain"
	"bm/utils/logger"
)

func initTestLogger() {
	var buf bytes.Buffer
	logger.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func TestBmDBRepository_ListLinks(t *testing.T) {
	initTestLogger()

	userID := uuid.New()
	ctx := context.Background()
	now := time.Now()

	linkRows := func(ids ...uuid.UUID) *pgxmock.Rows {
		rows := pgxmock.NewRows([]string{"id", "user_id", "url", "title", "note", "added", "updated"})
		for _, id := range ids {
			rows.AddRow(id, &userID, "https://example.com", "Example", "", now, now)
		}
		return rows
	}

	t.Run("DefaultOrdering_NewestFirst", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		mock.ExpectQuery(`SELECT.*FROM links l WHERE l\.user_id = \$1 ORDER BY l\.added DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(userID, 101, 0).
			WillReturnRows(linkRows(uuid.New(), uuid.New()))

		links, hasMore, err := repo.ListLinks(ctx, userID, domain.LinkFilter{Limit: 100, Page: 1})

		require.NoError(t, err)
		require.Len(t, links, 2)
		require.False(t, hasMore)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ExtraRow_ReportsMorePages", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		mock.ExpectQuery(`SELECT.*FROM links l WHERE l\.user_id = \$1 ORDER BY l\.added DESC LIMIT \$2 OFFSET \$3`).
			WithArgs(userID, 3, 2).
			WillReturnRows(linkRows(uuid.New(), uuid.New(), uuid.New()))

		links, hasMore, err := repo.ListLinks(ctx, userID, domain.LinkFilter{Limit: 2, Page: 2})

		require.NoError(t, err)
		require.Len(t, links, 2)
		require.True(t, hasMore)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DomainFilter_MatchesBothSchemes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		mock.ExpectQuery(`SELECT.*FROM links l WHERE l\.user_id = \$1 AND \(l\.url LIKE \$2 OR l\.url LIKE \$3\)`).
			WithArgs(userID, "https://example.com%", "http://example.com%", 101, 0).
			WillReturnRows(linkRows(uuid.New()))

		links, _, err := repo.ListLinks(ctx, userID, domain.LinkFilter{Domain: "example.com", Limit: 100, Page: 1})

		require.NoError(t, err)
		require.Len(t, links, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("TagFilter_CaseInsensitiveSlug", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		mock.ExpectQuery(`SELECT.*FROM links l.*lower\(t\.slug\) = lower\(\$2\)`).
			WithArgs(userID, "golang", 101, 0).
			WillReturnRows(linkRows(uuid.New()))

		_, _, err = repo.ListLinks(ctx, userID, domain.LinkFilter{Tag: "golang", Limit: 100, Page: 1})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("SearchFilter_MatchesURLTitleOrTagSlug", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		mock.ExpectQuery(`SELECT.*l\.url ILIKE \$2 OR l\.title ILIKE \$2 OR EXISTS.*lower\(t\.slug\) = lower\(\$3\)`).
			WithArgs(userID, "%cache%", "cache", 101, 0).
			WillReturnRows(linkRows(uuid.New()))

		_, _, err = repo.ListLinks(ctx, userID, domain.LinkFilter{Search: "cache", Limit: 100, Page: 1})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WildcardInput_MatchesLiterally", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		mock.ExpectQuery(`SELECT.*l\.url LIKE \$2 OR l\.url LIKE \$3.*l\.url ILIKE \$4 OR l\.title ILIKE \$4`).
			WithArgs(userID,
				`https://50\%off.example%`, `http://50\%off.example%`,
				`%100\%\_sale%`, "100%_sale", 101, 0).
			WillReturnRows(linkRows(uuid.New()))

		_, _, err = repo.ListLinks(ctx, userID, domain.LinkFilter{
			Domain: "50%off.example", Search: "100%_sale", Limit: 100, Page: 1,
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RandomOrdering", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		mock.ExpectQuery(`SELECT.*FROM links l WHERE l\.user_id = \$1 ORDER BY random\(\) LIMIT \$2 OFFSET \$3`).
			WithArgs(userID, 101, 0).
			WillReturnRows(linkRows(uuid.New()))

		_, _, err = repo.ListLinks(ctx, userID, domain.LinkFilter{Random: true, Limit: 100, Page: 1})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DateFilter_CoversOneDay", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := &BmDBRepository{pool: mock}

		day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT.*l\.added >= \$2 AND l\.added < \$3`).
			WithArgs(userID, day, day.Add(24*time.Hour), 101, 0).
			WillReturnRows(linkRows(uuid.New()))

		_, _, err = repo.ListLinks(ctx, userID, domain.LinkFilter{Date: &day, Limit: 100, Page: 1})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
