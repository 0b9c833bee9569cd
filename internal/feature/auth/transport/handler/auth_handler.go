// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"yoga_storefront/internal/feature/auth/domain/entity"
	"yoga_storefront/internal/feature/auth/transport/http/dto"
	"yoga_storefront/internal/feature/auth/usecase"
	"yoga_storefront/internal/shared/apperr"
	"yoga_storefront/internal/shared/notice"
)

// SessionUsecase は端末セッション操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type SessionUsecase interface {
	// Session は現在のセッション状態を返します。
	Session() entity.Session
	// Login はユーザーを認証し、成功時にセッションを保存します。
	Login(ctx context.Context, email, password string) (*entity.User, error)
	// Register は新規ユーザーを登録し、そのままログイン状態にします。
	Register(ctx context.Context, data entity.Registration) (*entity.User, error)
	// Logout はセッションを破棄します。失敗しません。
	Logout(ctx context.Context)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	sessions SessionUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からSessionUsecaseを注入します。
func NewAuthHandler(sessions SessionUsecase) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Session は現在のセッション状態を返します。
//
// GET /session
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSessionRes(h.sessions.Session()))
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 存在しないユーザーとパスワード不一致は同じ401を返却
// - 試行回数超過時は429を返却
// - 成功時はユーザー情報付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, notice.Failed(notice.Fail("Please enter a valid email address")))
		return
	}

	user, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// ユーザー列挙攻撃を防止するため、NotFoundとInvalidCredentialsは同じ応答にする
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		status, n := loginFailure(err)
		c.JSON(status, notice.Failed(n))
		return
	}

	slog.Info("user login successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthRes{Success: true, User: user, Notice: notice.Success("Login successful")})
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201を返却（そのままログイン状態になる）
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, notice.Failed(notice.Fail("Please fill in all fields")))
		return
	}

	user, err := h.sessions.Register(c.Request.Context(), req.ToRegistration())
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		status, n := registerFailure(err)
		c.JSON(status, notice.Failed(n))
		return
	}

	slog.Info("user register successful", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthRes{Success: true, User: user, Notice: notice.Success("Account created")})
}

// Logout はセッションを破棄します。常に200を返します。
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, notice.OK(notice.Info("Logged out")))
}

func loginFailure(err error) (int, notice.Notice) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, notice.Fail("Invalid password provided.")
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusUnauthorized, notice.Fail("Incorrect email or password.")
	case errors.Is(err, usecase.ErrTooManyAttempts):
		return http.StatusTooManyRequests, notice.Fail("Too many failed attempts. Please try again later.")
	case errors.Is(err, apperr.ErrRemoteUnavailable):
		return http.StatusBadGateway, notice.Fail("An unknown error occurred.")
	default:
		return http.StatusInternalServerError, notice.Fail("An unknown error occurred.")
	}
}

func registerFailure(err error) (int, notice.Notice) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest, notice.Fail("Invalid password provided.")
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		return http.StatusConflict, notice.Fail("An account with this email already exists.")
	case errors.Is(err, apperr.ErrRemoteUnavailable):
		return http.StatusBadGateway, notice.Fail("Failed to create account.")
	default:
		return http.StatusInternalServerError, notice.Fail("Failed to create account.")
	}
}
