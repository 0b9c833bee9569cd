package dto

import (
	"yoga_storefront/internal/feature/auth/domain/entity"
	"yoga_storefront/internal/shared/notice"
)

// SessionRes は GET /session のレスポンスです。
type SessionRes struct {
	Loading       bool         `json:"loading"`
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user"`
}

// AuthRes は /login と /register の成功レスポンスです。
type AuthRes struct {
	Success bool          `json:"success"`
	User    *entity.User  `json:"user"`
	Notice  notice.Notice `json:"notice"`
}

// NewSessionRes converts a session to its response form.
func NewSessionRes(s entity.Session) SessionRes {
	return SessionRes{Loading: s.Loading, Authenticated: s.IsAuthenticated(), User: s.User}
}
