package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yoga_storefront/internal/feature/catalog/domain/entity"
	"yoga_storefront/internal/feature/catalog/transport/http/dto"
	"yoga_storefront/internal/feature/catalog/usecase"
	"yoga_storefront/internal/shared/apperr"
	"yoga_storefront/internal/shared/notice"
)

// mockCatalogUsecase is a mock implementation of CatalogUsecase.
type mockCatalogUsecase struct {
	RefreshFunc    func(ctx context.Context, force bool) ([]entity.YogaClass, error)
	FilterFunc     func(query string) []entity.YogaClass
	ToggleCartFunc func(classID int64) (bool, error)
	cart           map[int64]bool
}

func (m *mockCatalogUsecase) Refresh(ctx context.Context, force bool) ([]entity.YogaClass, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, force)
	}
	return nil, nil
}

func (m *mockCatalogUsecase) Filter(query string) []entity.YogaClass {
	if m.FilterFunc != nil {
		return m.FilterFunc(query)
	}
	return nil
}

func (m *mockCatalogUsecase) ToggleCart(classID int64) (bool, error) {
	if m.ToggleCartFunc != nil {
		return m.ToggleCartFunc(classID)
	}
	return false, nil
}

func (m *mockCatalogUsecase) InCart(classID int64) bool {
	return m.cart[classID]
}

var testClasses = []entity.YogaClass{
	{ID: 1, Day: "Monday", Time: "10:00", Price: 20, Type: "Hatha", Instances: []entity.ClassInstance{{ID: 11, Teacher: "Ana"}}},
	{ID: 2, Day: "Tuesday", Time: "18:00", Price: 15, Type: "Yin"},
}

func setupRouter(uc CatalogUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(uc)
	r := gin.New()
	r.GET("/classes", h.ListClasses)
	r.POST("/classes/refresh", h.Refresh)
	r.POST("/classes/:id/toggle", h.Toggle)
	return r
}

func TestCatalogHandler_ListClasses(t *testing.T) {
	var gotQuery string
	uc := &mockCatalogUsecase{
		FilterFunc: func(query string) []entity.YogaClass {
			gotQuery = query
			return testClasses[:1]
		},
		cart: map[int64]bool{1: true},
	}
	router := setupRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/classes?q=ana", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ana", gotQuery)

	var res dto.ClassListRes
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "ana", res.Query)
	require.Len(t, res.Classes, 1)
	assert.Equal(t, "Hatha", res.Classes[0].Type)
	assert.True(t, res.Classes[0].InCart)
	assert.Equal(t, "Ana", res.Classes[0].Instances[0].Teacher)
}

func TestCatalogHandler_ListClasses_EmptyIsArray(t *testing.T) {
	router := setupRouter(&mockCatalogUsecase{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classes", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"query":"","classes":[]}`, w.Body.String())
}

func TestCatalogHandler_Refresh(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		refreshErr     error
		expectedStatus int
		expectedForce  bool
	}{
		{name: "success", url: "/classes/refresh", expectedStatus: http.StatusOK},
		{name: "force flag", url: "/classes/refresh?force=true", expectedStatus: http.StatusOK, expectedForce: true},
		{
			name:           "remote failure",
			url:            "/classes/refresh",
			refreshErr:     apperr.Remote("list classes", errors.New("offline")),
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "client went away",
			url:            "/classes/refresh",
			refreshErr:     context.Canceled,
			expectedStatus: statusClientClosedRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotForce bool
			uc := &mockCatalogUsecase{
				RefreshFunc: func(ctx context.Context, force bool) ([]entity.YogaClass, error) {
					gotForce = force
					return testClasses, tt.refreshErr
				},
				FilterFunc: func(string) []entity.YogaClass { return testClasses },
			}
			router := setupRouter(uc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedForce, gotForce)

			if tt.expectedStatus == http.StatusOK {
				var res dto.ClassListRes
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
				assert.Len(t, res.Classes, 2)
				return
			}
			var res notice.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.False(t, res.Success)
			if tt.expectedStatus == statusClientClosedRequest {
				assert.Equal(t, notice.Info("Request cancelled"), res.Notice)
				return
			}
			assert.Equal(t, notice.Fail("Failed to load data"), res.Notice)
		})
	}
}

func TestCatalogHandler_Toggle(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		toggle         func(int64) (bool, error)
		expectedStatus int
		expectedNotice notice.Notice
		expectedInCart bool
	}{
		{
			name:           "added",
			path:           "/classes/1/toggle",
			toggle:         func(int64) (bool, error) { return true, nil },
			expectedStatus: http.StatusOK,
			expectedNotice: notice.Success("Class and its instances added to cart"),
			expectedInCart: true,
		},
		{
			name:           "removed",
			path:           "/classes/1/toggle",
			toggle:         func(int64) (bool, error) { return false, nil },
			expectedStatus: http.StatusOK,
			expectedNotice: notice.Info("Removed class from cart"),
		},
		{
			name:           "no instances",
			path:           "/classes/2/toggle",
			toggle:         func(int64) (bool, error) { return false, usecase.ErrNoInstances },
			expectedStatus: http.StatusOK,
			expectedNotice: notice.Info("This class has no available instances"),
		},
		{
			name:           "unknown class",
			path:           "/classes/9/toggle",
			toggle:         func(int64) (bool, error) { return false, usecase.ErrClassNotFound },
			expectedStatus: http.StatusNotFound,
			expectedNotice: notice.Fail("Class not found"),
		},
		{
			name:           "invalid id",
			path:           "/classes/abc/toggle",
			expectedStatus: http.StatusBadRequest,
			expectedNotice: notice.Fail("invalid class id"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(&mockCatalogUsecase{ToggleCartFunc: tt.toggle})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body struct {
				InCart bool          `json:"inCart"`
				Notice notice.Notice `json:"notice"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedNotice, body.Notice)
			assert.Equal(t, tt.expectedInCart, body.InCart)
		})
	}
}
