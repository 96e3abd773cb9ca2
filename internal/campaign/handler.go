package campaign

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/pkg/message"
	"github.com/peaceoutommy/DMA-API/internal/pkg/web"
	"github.com/peaceoutommy/DMA-API/internal/platform/validation"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/shopspring/decimal"
)

const formImages = "images"

type CampaignService interface {
	List(ctx context.Context) ([]Response, error)
	Get(ctx context.Context, id int64) (Response, error)
	Create(ctx context.Context, actor *principal.Principal, params CreateParams) (Response, error)
	Update(ctx context.Context, actor *principal.Principal, params UpdateParams) (Response, error)
	Archive(ctx context.Context, actor *principal.Principal, id int64) error
	Delete(ctx context.Context, actor *principal.Principal, id int64) error
}

type Handler struct {
	svc            CampaignService
	validator      validation.Validator
	maxUploadBytes int64
}

func NewHandler(svc CampaignService, validator validation.Validator, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, validator: validator, maxUploadBytes: maxUploadBytes}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &campaigns)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	web.RespondOK(w, nil, &c)
}

// CreateRequest holds the form fields of a multipart campaign submission.
type CreateRequest struct {
	CompanyID   int64           `json:"company_id" validate:"required,gt=0"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"required,min=10,max=2000"`
	FundGoal    decimal.Decimal `json:"fund_goal" validate:"required,gte=1,lte=999999999"`
	StartDate   string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
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

	req, errs := parseCreateForm(r.MultipartForm)
	if len(errs) == 0 {
		errs = h.validator.ValidateStruct(req)
	}
	if len(errs) > 0 {
		web.RespondBadRequest(w, errors.New("invalid campaign form"), message.InvalidInput, errs)
		return
	}

	params := CreateParams{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
		FundGoal:    req.FundGoal,
	}
	params.StartDate, _ = ParseDate(req.StartDate)
	params.EndDate, _ = ParseDate(req.EndDate)

	for _, fh := range r.MultipartForm.File[formImages] {
		f, err := fh.Open()
		if err != nil {
			web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{formImages: "unreadable file"})
			return
		}
		defer f.Close()
		params.Images = append(params.Images, Image{Filename: fh.Filename, Body: f})
	}

	created, err := h.svc.Create(r.Context(), p, params)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Campaign created. It will be visible once reviewed."
	web.RespondCreated(w, &msg, &created)
}

func parseCreateForm(form *multipart.Form) (CreateRequest, map[string]string) {
	value := func(key string) string {
		if v := form.Value[key]; len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
		return ""
	}

	req := CreateRequest{
		Name:        value("name"),
		Description: value("description"),
		StartDate:   value("start_date"),
		EndDate:     value("end_date"),
	}

	errs := make(map[string]string)
	if raw := value("company_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs["company_id"] = "company_id must be a number"
		}
		req.CompanyID = id
	}

	if raw := value("fund_goal"); raw != "" {
		goal, err := decimal.NewFromString(raw)
		if err != nil {
			errs["fund_goal"] = "fund_goal must be a number"
		}
		req.FundGoal = goal
	}

	return req, errs
}

type UpdateRequest struct {
	ID          int64           `json:"id" validate:"required,gt=0"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"required,min=10,max=2000"`
	FundGoal    decimal.Decimal `json:"fund_goal" validate:"required,gte=1,lte=999999999"`
	StartDate   string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *Status         `json:"status" validate:"omitempty,oneof=PENDING ACTIVE REJECTED ARCHIVED COMPLETED"`
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	req, err := web.ParamsFromContext[UpdateRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	params := UpdateParams{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		FundGoal:    req.FundGoal,
		Status:      req.Status,
	}
	params.StartDate, _ = ParseDate(req.StartDate)
	params.EndDate, _ = ParseDate(req.EndDate)

	updated, err := h.svc.Update(r.Context(), p, params)
	if err != nil {
		respondError(w, err)
		return
	}

	msg := "Campaign updated."
	web.RespondOK(w, &msg, &updated)
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Archive(r.Context(), p, id); err != nil {
		respondError(w, err)
		return
	}

	msg := "Campaign archived."
	web.RespondOK[struct{}](w, &msg, nil)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	p, err := principal.FromContext(r.Context())
	if err != nil {
		web.RespondUnauthorized(w, err, message.Unauthorized, nil)
		return
	}

	id, err := web.PathID(r, "id")
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), p, id); err != nil {
		respondError(w, err)
		return
	}

	msg := "Campaign deleted."
	web.RespondOK[struct{}](w, &msg, nil)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Campaign"), nil)
	case errors.Is(err, ErrCompanyNotFound), errors.Is(err, company.ErrNotFound):
		web.RespondNotFound(w, err, fmt.Sprintf(message.NotFoundFmt, "Company"), nil)
	case errors.Is(err, ErrHasDonations):
		web.RespondConflict(w, err, "Campaign has donations and cannot be deleted.", nil)
	case errors.Is(err, ErrInvalidDates):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"end_date": "end_date must not be before start_date"})
	case errors.Is(err, ErrInvalidStatus):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"status": "status must be ARCHIVED or COMPLETED"})
	case errors.Is(err, ErrBlankName):
		web.RespondBadRequest(w, err, message.InvalidInput, map[string]string{"name": "name is required"})
	case errors.Is(err, file.ErrUnsupportedType), errors.Is(err, file.ErrEmpty):
		web.RespondBadRequest(w, err, "Only jpeg, png, gif and webp images are allowed.", nil)
	case errors.Is(err, file.ErrUpload):
		web.RespondBadGateway(w, err, message.UploadFailed, nil)
	case errors.Is(err, ErrForbidden):
		web.RespondForbidden(w, err, message.Forbidden, nil)
	default:
		web.RespondInternalServerError(w, err)
	}
}
