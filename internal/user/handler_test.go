package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/user"
)

func TestHandler_Get(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		id       string
		findFunc func(context.Context, int64) (user.User, error)
		code     int
		want     *user.Response
	}{
		{
			name: "found",
			id:   "3",
			findFunc: func(_ context.Context, id int64) (user.User, error) {
				return user.User{ID: id, Email: "ana@example.com", Username: "ana", PasswordHash: "secret",
					Role: principal.RoleDonor, CreatedAt: now, UpdatedAt: now}, nil
			},
			code: http.StatusOK,
			want: &user.Response{ID: 3, Email: "ana@example.com", Username: "ana", Role: principal.RoleDonor,
				CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "missing",
			id:   "4",
			findFunc: func(context.Context, int64) (user.User, error) {
				return user.User{}, user.ErrNotFound
			},
			code: http.StatusNotFound,
		},
		{
			name: "invalid id",
			id:   "abc",
			code: http.StatusBadRequest,
		},
		{
			name: "service error",
			id:   "5",
			findFunc: func(context.Context, int64) (user.User, error) {
				return user.User{}, errors.New("db down")
			},
			code: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := user.NewHandler(&user.StubService{FindFunc: tt.findFunc}, 1<<20)
			req := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.id, http.NoBody)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.Get(rec, req)

			if rec.Code != tt.code {
				t.Fatalf(message.FmtErrStatusCode, rec.Code, tt.code)
			}

			if tt.want == nil {
				return
			}

			var res web.OKResponse[*user.Response]
			if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(res.Data, tt.want) {
				t.Errorf("res.Data = %+v, want: %+v", res.Data, tt.want)
			}
		})
	}
}

func TestHandler_ResponseOmitsPasswordHash(t *testing.T) {
	t.Parallel()

	svc := &user.StubService{
		FindByEmailFunc: func(_ context.Context, email string) (user.User, error) {
			return user.User{ID: 1, Email: email, PasswordHash: "$2a$12$hash"}, nil
		},
	}
	h := user.NewHandler(svc, 1<<20)
	req := httptest.NewRequest(http.MethodGet, "/api/users/email/ana@example.com", http.NoBody)
	req.SetPathValue("email", "ana@example.com")
	rec := httptest.NewRecorder()
	h.GetByEmail(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf(message.FmtErrStatusCode, rec.Code, http.StatusOK)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("$2a$12$hash")) {
		t.Errorf("response body leaks the password hash: %s", rec.Body.String())
	}
}

func TestHandler_Search(t *testing.T) {
	t.Parallel()

	var gotTerm string
	svc := &user.StubService{
		SearchFunc: func(_ context.Context, term string) ([]user.User, error) {
			gotTerm = term
			return []user.User{{ID: 1, Email: "ana@example.com"}, {ID: 2, Email: "banana@example.com"}}, nil
		},
	}
	h := user.NewHandler(svc, 1<<20)
	req := httptest.NewRequest(http.MethodGet, "/api/users/search/ana", http.NoBody)
	req.SetPathValue("email", "ana")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf(message.FmtErrStatusCode, rec.Code, http.StatusOK)
	}
	if gotTerm != "ana" {
		t.Errorf("term = %q, want: %q", gotTerm, "ana")
	}

	var res web.OKResponse[[]user.Response]
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if len(res.Data) != 2 {
		t.Errorf("len(res.Data) = %d, want: 2", len(res.Data))
	}
}

func newMultipart(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return body, mw.FormDataContentType()
}

func TestHandler_UploadPicture(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		field      string
		uploadFunc func(context.Context, int64, string, io.Reader) (file.AppFile, error)
		code       int
	}{
		{
			name:  "uploaded",
			field: "file",
			uploadFunc: func(_ context.Context, id int64, filename string, _ io.Reader) (file.AppFile, error) {
				return file.AppFile{ID: 1, EntityID: id, URL: "https://cdn/" + filename, FileType: file.TypeProfilePicture}, nil
			},
			code: http.StatusCreated,
		},
		{
			name:  "not an image",
			field: "file",
			uploadFunc: func(context.Context, int64, string, io.Reader) (file.AppFile, error) {
				return file.AppFile{}, file.ErrUnsupportedType
			},
			code: http.StatusBadRequest,
		},
		{
			name:  "store failure",
			field: "file",
			uploadFunc: func(context.Context, int64, string, io.Reader) (file.AppFile, error) {
				return file.AppFile{}, file.ErrUpload
			},
			code: http.StatusBadGateway,
		},
		{
			name:  "missing file field",
			field: "picture",
			code:  http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body, contentType := newMultipart(t, tt.field, "me.png", []byte("\x89PNG\r\n\x1a\n"))
			ctx := principal.NewContext(context.Background(), &principal.Principal{UserID: 9})
			req := httptest.NewRequestWithContext(ctx, http.MethodPost, "/api/users/me/picture", body)
			req.Header.Set(web.HeaderContentType, contentType)
			rec := httptest.NewRecorder()

			h := user.NewHandler(&user.StubService{UploadPictureFunc: tt.uploadFunc}, 1<<20)
			h.UploadPicture(rec, req)

			if rec.Code != tt.code {
				t.Errorf(message.FmtErrStatusCode, rec.Code, tt.code)
			}
		})
	}
}

func TestHandler_UploadPictureRequiresPrincipal(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/users/me/picture", http.NoBody)
	rec := httptest.NewRecorder()
	user.NewHandler(&user.StubService{}, 1<<20).UploadPicture(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf(message.FmtErrStatusCode, rec.Code, http.StatusUnauthorized)
	}
}
