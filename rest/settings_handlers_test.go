package rest

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"bm/domain"
)

func TestGetSettingsHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("returns stored settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		e, tc := newTestServer(t, ctrl, userID)

		stored := &domain.UserSettings{UserID: userID, GithubPAT: "ghp_token", HNUsername: "pg"}
		tc.settings.EXPECT().GetUserSettings(gomock.Any(), userID).Return(stored, nil)

		rec := doRequest(e, http.MethodGet, "/v1/settings", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var resp domain.UserSettings
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ghp_token", resp.GithubPAT)
		assert.Equal(t, "pg", resp.HNUsername)
	})

	t.Run("first access creates an empty row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		e, tc := newTestServer(t, ctrl, userID)

		tc.settings.EXPECT().GetUserSettings(gomock.Any(), userID).Return(nil, domain.ErrSettingsNotFound)
		tc.settings.EXPECT().SaveUserSettings(gomock.Any(), &domain.UserSettings{UserID: userID}).Return(nil)

		rec := doRequest(e, http.MethodGet, "/v1/settings", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"github_pat":""`)
	})
}

func TestSaveSettingsHandler(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	e, tc := newTestServer(t, ctrl, userID)

	expected := &domain.UserSettings{
		UserID:          userID,
		FeedbinUsername: "me@example.com",
		FeedbinPassword: "secret",
	}
	tc.settings.EXPECT().SaveUserSettings(gomock.Any(), expected).Return(nil)

	rec := doRequest(e, http.MethodPut, "/v1/settings",
		`{"feedbin_username":"me@example.com","feedbin_password":"secret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "me@example.com")
}
