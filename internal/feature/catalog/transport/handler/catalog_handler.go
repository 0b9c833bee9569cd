// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yoga_storefront/internal/feature/catalog/domain/entity"
	"yoga_storefront/internal/feature/catalog/transport/http/dto"
	"yoga_storefront/internal/feature/catalog/usecase"
	"yoga_storefront/internal/shared/notice"
)

// statusClientClosedRequest はクライアントが応答前に切断したことを示します（nginx互換）。
const statusClientClosedRequest = 499

// CatalogUsecase はカタログ閲覧のユースケースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	Refresh(ctx context.Context, force bool) ([]entity.YogaClass, error)
	Filter(query string) []entity.YogaClass
	ToggleCart(classID int64) (bool, error)
	InCart(classID int64) bool
}

// CatalogHandler はカタログ関連のHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler はCatalogHandlerの新しいインスタンスを生成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListClasses は最後に取得できたカタログを検索語で絞り込んで返します。
// リモートストアにはアクセスしません。
//
// エンドポイント例:
// GET /classes?q=ana
func (h *CatalogHandler) ListClasses(c *gin.Context) {
	q := c.Query("q")
	c.JSON(http.StatusOK, h.listResponse(q, h.uc.Filter(q)))
}

// Refresh はカタログを再取得します。失敗時は前回のカタログが保持されます。
//
// エンドポイント例:
// POST /classes/refresh?force=true
func (h *CatalogHandler) Refresh(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))

	if _, err := h.uc.Refresh(c.Request.Context(), force); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("catalog refresh cancelled", "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(statusClientClosedRequest, notice.Failed(notice.Info("Request cancelled")))
			return
		}
		slog.Error("catalog refresh failed", "error", err)
		c.JSON(http.StatusBadGateway, notice.Failed(notice.Fail("Failed to load data")))
		return
	}

	q := c.Query("q")
	c.JSON(http.StatusOK, h.listResponse(q, h.uc.Filter(q)))
}

// Toggle はクラスをカートに追加、または既に追加済みなら削除します。
//
// エンドポイント例:
// POST /classes/:id/toggle
func (h *CatalogHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, notice.Failed(notice.Fail("invalid class id")))
		return
	}

	inCart, err := h.uc.ToggleCart(id)
	switch {
	case errors.Is(err, usecase.ErrNoInstances):
		// エラーではなく案内として返す。カートは変更されない
		c.JSON(http.StatusOK, dto.ToggleRes{ClassID: id, InCart: false, Notice: notice.Info("This class has no available instances")})
		return
	case errors.Is(err, usecase.ErrClassNotFound):
		c.JSON(http.StatusNotFound, notice.Failed(notice.Fail("Class not found")))
		return
	case err != nil:
		slog.Error("toggle cart failed", "error", err, "class_id", id)
		c.JSON(http.StatusInternalServerError, notice.Failed(notice.Fail("An unknown error occurred.")))
		return
	}

	n := notice.Info("Removed class from cart")
	if inCart {
		n = notice.Success("Class and its instances added to cart")
	}
	c.JSON(http.StatusOK, dto.ToggleRes{ClassID: id, InCart: inCart, Notice: n})
}

func (h *CatalogHandler) listResponse(q string, classes []entity.YogaClass) dto.ClassListRes {
	out := make([]dto.ClassRes, 0, len(classes))
	for _, cl := range classes {
		out = append(out, dto.NewClassRes(cl, h.uc.InCart(cl.ID)))
	}
	return dto.ClassListRes{Query: q, Classes: out}
}
