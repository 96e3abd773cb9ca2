package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/principal"
)

const formFile = "file"

type UserService interface {
	Find(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Search(ctx context.Context, term string) ([]User, error)
	UploadPicture(ctx context.Context, id int64, filename string, body io.Reader) (file.AppFile, error)
}

type Handler struct {
	svc            UserService
	maxUploadBytes int64
}

func NewHandler(svc UserService, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.Find(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, NewResponse(u))
}

func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.FindByEmail(r.Context(), r.PathValue("email"))
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, NewResponse(u))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Search(r.Context(), r.PathValue("email"))
	if err != nil {
		respondError(w, err)
		return
	}

	data := NewResponses(users)
	web.RespondOK(w, nil, &data)
}

func (h *Handler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			web.RespondRequestEntityTooLarge(w, err, message.InvalidInput, nil)
			return
		}
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f, header, err := r.FormFile(formFile)
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{formFile: "file is required"})
		return
	}
	defer f.Close()

	uploaded, err := h.svc.UploadPicture(r.Context(), p.UserID, header.Filename, f)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Profile picture uploaded."
	data := file.NewResponse(uploaded)
	web.RespondCreated(w, &msg, &data)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "User"), nil)
	case errors.Is(err, ErrDuplicate):
		web.RespondConflict(w, err, "User already exists.", nil)
	case errors.Is(err, file.ErrUnsupportedType), errors.Is(err, file.ErrEmpty):
		web.RespondBadRequest(w, err, "Only jpeg, png, gif and webp images are allowed.", nil)
	case errors.Is(err, file.ErrUpload):
		web.RespondBadGateway(w, err, message.UploadFailed, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
