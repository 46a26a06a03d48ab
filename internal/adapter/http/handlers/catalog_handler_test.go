package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"warsto_quotation/internal/adapter/http/handlers/mocks"
	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.Use(VisitorKeyMiddleware())
	r.GET("/api/options/:bhkType", h.GetOptions)
	r.POST("/api/addCustomOption", h.AddCustomOption)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestCatalogHandler_GetOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc, nil))

		uc.EXPECT().GetOptions(gomock.Any(), "v1", "2 BHK").Return(entities.RoomOptions{"LivingRoom": {"TV Unit", "Bar Counter"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/options/2%20BHK", nil)
		req.Header.Set(VisitorKeyHeader, "v1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		items, ok := body["LivingRoom"].([]any)
		if !ok || len(items) != 2 || items[1] != "Bar Counter" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc, nil))

		uc.EXPECT().GetOptions(gomock.Any(), gomock.Any(), "9 BHK").Return(nil, usecase.ErrInvalidDwellingSize)

		req := httptest.NewRequest(http.MethodGet, "/api/options/9%20BHK", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["error"] != "Invalid BHK type" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc, nil))

		uc.EXPECT().GetOptions(gomock.Any(), gomock.Any(), "1 BHK").Return(nil, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodGet, "/api/options/1%20BHK", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("redis down")) {
			t.Fatalf("internal cause leaked: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_AddCustomOption(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc, nil))

		req := httptest.NewRequest(http.MethodPost, "/api/addCustomOption", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	messages := []struct {
		err  error
		want string
	}{
		{usecase.ErrCustomOptionFieldsRequired, "All fields are required"},
		{usecase.ErrInvalidRoomCategory, "Invalid BHK type or category"},
		{usecase.ErrImmutableRoomCategory, "Cannot add custom options to this category"},
		{usecase.ErrCustomOptionLength, "Custom option must be between 2 and 50 characters"},
		{usecase.ErrCustomOptionExists, "Option already exists"},
	}
	for _, tc := range messages {
		t.Run(tc.want, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICatalogUseCase(ctrl)
			r := newCatalogRouter(NewCatalogHandler(uc, nil))

			uc.EXPECT().AddCustomOption(gomock.Any(), "v1", "1 BHK", "Kitchen", "Island").Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/addCustomOption",
				bytes.NewBufferString(`{"bhkType":"1 BHK","category":"Kitchen","customOption":"Island"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(VisitorKeyHeader, "v1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if body := decodeBody(t, w); body["error"] != tc.want {
				t.Fatalf("expected %q, got %s", tc.want, w.Body.String())
			}
		})
	}

	t.Run("success with cookie visitor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc, nil))

		uc.EXPECT().AddCustomOption(gomock.Any(), "cookie-visitor", "2 BHK", "LivingRoom", "Bar Counter").
			Return([]string{"TV Unit", "Bar Counter"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/addCustomOption",
			bytes.NewBufferString(`{"dwellingSize":"2 BHK","roomCategory":"LivingRoom","itemName":"Bar Counter"}`))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: VisitorKeyCookie, Value: "cookie-visitor"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["message"] != "Custom option added successfully" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if opts, ok := body["updatedOptions"].([]any); !ok || len(opts) != 2 {
			t.Fatalf("unexpected updatedOptions: %s", w.Body.String())
		}
	})
}

func TestVisitorKeyMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(VisitorKeyMiddleware())
	r.GET("/key", func(c *gin.Context) { c.String(http.StatusOK, VisitorKey(c)) })

	t.Run("header wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/key", nil)
		req.Header.Set(VisitorKeyHeader, "from-header")
		req.AddCookie(&http.Cookie{Name: VisitorKeyCookie, Value: "from-cookie"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Body.String() != "from-header" {
			t.Fatalf("unexpected key: %s", w.Body.String())
		}
	})

	t.Run("new visitor gets a cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/key", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		key := w.Body.String()
		if key == "" || w.Header().Get(VisitorKeyHeader) != key {
			t.Fatalf("expected generated key, got %q", key)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != VisitorKeyCookie || cookies[0].Value != key {
			t.Fatalf("unexpected cookies: %+v", cookies)
		}
	})
}
