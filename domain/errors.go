package domain

import "errors"

var (
	// 認証・認可エラー
	ErrUnauthorized = errors.New("unauthorized")

	// リンク関連エラー
	ErrLinkNotFound       = errors.New("link not found")
	ErrSettingsNotFound   = errors.New("user settings not found")
	ErrScreenshotNotFound = errors.New("screenshot not found")

	// インポート関連エラー
	ErrMissingCredential = errors.New("missing credential")
	ErrExpiredCredential = errors.New("expired credential")
	ErrRemoteFetch       = errors.New("remote fetch failed")

	ErrInvalidUserContext = errors.New("invalid user context")
)
