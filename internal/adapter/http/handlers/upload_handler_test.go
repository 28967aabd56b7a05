package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"revolux/internal/adapter/http/handlers/mocks"
	"revolux/internal/domain/entities"
	"revolux/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartRequest(t *testing.T, field, name, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = fw.Write([]byte(content))
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(HeaderUserEmail, analystEmail)
	return req
}

func newUploadRouter(h *UploadHandler) *gin.Engine {
	r := newTestRouter()
	r.POST("/v1/uploads", h.CreateUpload)
	r.GET("/v1/uploads", h.ListUploads)
	r.GET("/v1/uploads/:id", h.GetUpload)
	return r
}

func TestUploadHandler_CreateUpload(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newUploadRouter(NewUploadHandler(mocks.NewMockIUploadUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "other", "x.csv", "a,b\n"))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		r := newUploadRouter(NewUploadHandler(uc))

		content := "sku,qty\nP-1,10\n"
		uc.EXPECT().Analyze(gomock.Any(), entities.Actor{Email: analystEmail, Role: entities.RoleOperador}, "pedidos.csv", int64(len(content)), gomock.Any()).DoAndReturn(
			func(_ context.Context, owner entities.Actor, name string, size int64, body io.Reader) (entities.Upload, error) {
				raw, _ := io.ReadAll(body)
				if string(raw) != content {
					t.Fatalf("unexpected file content %q", raw)
				}
				return entities.Upload{ID: "U1", OwnerEmail: owner.Email, FileName: name, FileSize: size, Status: entities.UploadStatusProcessed}, nil
			},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "file", "pedidos.csv", content))
		if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"status":"processed"`) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIUploadUseCase(ctrl)
		r := newUploadRouter(NewUploadHandler(uc))

		uc.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Upload{}, errors.New("dynamodb down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "file", "pedidos.csv", "a\n"))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestUploadHandler_ListAndGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIUploadUseCase(ctrl)
	r := newUploadRouter(NewUploadHandler(uc))

	uc.EXPECT().ListByOwner(gomock.Any(), analystEmail).Return([]entities.Upload{{ID: "U1", OwnerEmail: analystEmail}}, nil)
	w := doRequest(r, http.MethodGet, "/v1/uploads", "", analystEmail)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"U1"`) {
		t.Fatalf("unexpected list response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().GetByID(gomock.Any(), "U1").Return(entities.Upload{ID: "U1", OwnerEmail: analystEmail}, nil)
	if w := doRequest(r, http.MethodGet, "/v1/uploads/U1", "", analystEmail); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().GetByID(gomock.Any(), "U1").Return(entities.Upload{ID: "U1", OwnerEmail: analystEmail}, nil)
	w = doRequest(r, http.MethodGet, "/v1/uploads/U1", "", strategyEmail)
	if w.Code != http.StatusNotFound || errorCode(t, w) != "UPLOAD_NOT_FOUND" {
		t.Fatalf("expected 404 for another owner, got %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Upload{}, usecase.ErrUploadNotFound)
	if w := doRequest(r, http.MethodGet, "/v1/uploads/missing", "", analystEmail); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInsightsHandler_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInsightsUseCase(ctrl)
	h := NewInsightsHandler(uc)

	r := newTestRouter()
	r.POST("/v1/insights/ask", h.Ask)

	if w := doRequest(r, http.MethodPost, "/v1/insights/ask", `{}`, analystEmail); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing question, got %d", w.Code)
	}

	uc.EXPECT().Ask(gomock.Any(), "   ").Return(usecase.Answer{}, usecase.ErrEmptyQuestion)
	if w := doRequest(r, http.MethodPost, "/v1/insights/ask", `{"question":"   "}`, analystEmail); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank question, got %d", w.Code)
	}

	uc.EXPECT().Ask(gomock.Any(), "quais pedidos estão urgentes?").Return(usecase.Answer{Topic: "urgent", Content: "2 pedidos urgentes", Suggestions: []string{"Ver pendentes"}}, nil)
	w := doRequest(r, http.MethodPost, "/v1/insights/ask", `{"question":"quais pedidos estão urgentes?"}`, analystEmail)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"topic":"urgent"`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestRequireIdentity(t *testing.T) {
	r := newTestRouter()
	r.GET("/whoami", func(c *gin.Context) { c.JSON(http.StatusOK, actorFrom(c)) })

	cases := []struct {
		name   string
		email  string
		role   string
		status int
		want   string
	}{
		{"no identity", "", "", http.StatusUnauthorized, `"code":"UNAUTHENTICATED"`},
		{"operador by default", analystEmail, "", http.StatusOK, `"role":"operador"`},
		{"gestor tag", strategyEmail, "", http.StatusOK, `"role":"gestor"`},
		{"admin tag", "carla+admin@revolux.com", "", http.StatusOK, `"role":"admin"`},
		{"role header", analystEmail, "gestor", http.StatusOK, `"role":"gestor"`},
		{"invalid role header", analystEmail, "superuser", http.StatusUnauthorized, `"code":"INVALID_ROLE"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.email != "" {
				req.Header.Set(HeaderUserEmail, tc.email)
			}
			if tc.role != "" {
				req.Header.Set(HeaderUserRole, tc.role)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status || !strings.Contains(w.Body.String(), tc.want) {
				t.Fatalf("expected %d with %s, got %d %s", tc.status, tc.want, w.Code, w.Body.String())
			}
		})
	}

	t.Run("query identity rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami?user_email="+analystEmail, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for query identity, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestRequireStreamIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stream", RequireStreamIdentity(), func(c *gin.Context) { c.JSON(http.StatusOK, actorFrom(c)) })

	cases := []struct {
		name   string
		target string
		header string
		status int
		want   string
	}{
		{"query identity", "/stream?user_email=" + strategyEmail, "", http.StatusOK, `"role":"gestor"`},
		{"header wins over query", "/stream?user_email=" + strategyEmail, analystEmail, http.StatusOK, analystEmail},
		{"no identity", "/stream", "", http.StatusUnauthorized, `"code":"UNAUTHENTICATED"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.header != "" {
				req.Header.Set(HeaderUserEmail, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status || !strings.Contains(w.Body.String(), tc.want) {
				t.Fatalf("expected %d with %s, got %d %s", tc.status, tc.want, w.Code, w.Body.String())
			}
		})
	}
}
