package campaign

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/platform/cache"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/ticket"
	"github.com/shopspring/decimal"
)

// CacheKeyAll holds the cached public campaign list.
const CacheKeyAll = "campaigns:all"

const withdrawnMessage = "Campaign was deleted."

var (
	ErrNotFound        = errors.New("campaign: not found")
	ErrCompanyNotFound = errors.New("campaign: company not found")
	ErrHasDonations    = errors.New("campaign: has donations")
	ErrInvalidDates    = errors.New("campaign: end date is before start date")
	ErrInvalidStatus   = errors.New("campaign: status cannot be set directly")
	ErrForbidden       = errors.New("campaign: company belongs to another principal")
	ErrBlankName       = errors.New("campaign: name is blank")
)

type Repository interface {
	List(ctx context.Context) ([]Campaign, error)
	Find(ctx context.Context, id int64) (Campaign, error)
	Create(ctx context.Context, c Campaign) (int64, error)
	Update(ctx context.Context, c Campaign) error
	UpdateStatus(ctx context.Context, id int64, status Status) error
	AddRaisedFunds(ctx context.Context, id int64, amount decimal.Decimal) error
	HasDonations(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	FundRequestIDs(ctx context.Context, campaignID int64) ([]int64, error)
}

type FileStore interface {
	Upload(ctx context.Context, params file.UploadParams) (file.AppFile, error)
	ListURLs(ctx context.Context, entityType file.EntityType, entityIDs ...int64) (map[int64][]string, error)
	DeleteAll(ctx context.Context, entityType file.EntityType, entityID int64) ([]string, error)
	Discard(ctx context.Context, publicIDs ...string)
}

type CompanyFinder interface {
	Find(ctx context.Context, id int64) (company.Company, error)
}

type TicketOpener interface {
	Open(ctx context.Context, params ticket.OpenParams) (ticket.Ticket, error)
	Withdraw(ctx context.Context, t ticket.Type, message string, entityIDs ...int64) error
}

type Image struct {
	Filename string
	Body     io.Reader
}

type CreateParams struct {
	CompanyID   int64
	Name        string
	Description string
	FundGoal    decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Images      []Image
}

type UpdateParams struct {
	ID          int64
	Name        string
	Description string
	FundGoal    decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *Status
}

type Deps struct {
	Repo      Repository
	TxMgr     db.TxManager
	Files     FileStore
	Companies CompanyFinder
	Tickets   TicketOpener
	Cache     cache.Cache
	CacheTTL  time.Duration
}

type Service struct {
	repo      Repository
	txMgr     db.TxManager
	files     FileStore
	companies CompanyFinder
	tickets   TicketOpener
	cache     cache.Cache
	cacheTTL  time.Duration
}

func NewService(deps Deps) *Service {
	c := deps.Cache
	if c == nil {
		c = cache.Noop{}
	}

	return &Service{
		repo:      deps.Repo,
		txMgr:     deps.TxMgr,
		files:     deps.Files,
		companies: deps.Companies,
		tickets:   deps.Tickets,
		cache:     c,
		cacheTTL:  deps.CacheTTL,
	}
}

// List returns every non-archived campaign with its image urls. The result is
// cached until the next campaign write or recorded donation.
func (s *Service) List(ctx context.Context) ([]Response, error) {
	cached, err := s.cache.Get(ctx, CacheKeyAll)
	switch {
	case err == nil:
		var res []Response
		if err := json.Unmarshal(cached, &res); err != nil {
			slog.Warn("discarding unreadable campaign cache", "reason", err)
			break
		}
		return res, nil
	case !errors.Is(err, cache.ErrMiss):
		slog.Warn("campaign cache unavailable", "reason", err)
	}

	campaigns, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	ids := make([]int64, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	urls := map[int64][]string{}
	if len(ids) > 0 {
		if urls, err = s.files.ListURLs(ctx, file.EntityCampaign, ids...); err != nil {
			return nil, fmt.Errorf("list campaign images: %w", err)
		}
	}

	res := make([]Response, 0, len(campaigns))
	for _, c := range campaigns {
		res = append(res, NewResponse(c, urls[c.ID]))
	}

	if data, err := json.Marshal(res); err == nil {
		if err := s.cache.Set(ctx, CacheKeyAll, data, s.cacheTTL); err != nil {
			slog.Warn("failed to cache campaigns", "reason", err)
		}
	}

	return res, nil
}

func (s *Service) Find(ctx context.Context, id int64) (Campaign, error) {
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return Campaign{}, fmt.Errorf("find campaign %d: %w", id, err)
	}
	return c, nil
}

// Get returns a campaign with its image urls.
func (s *Service) Get(ctx context.Context, id int64) (Response, error) {
	c, err := s.Find(ctx, id)
	if err != nil {
		return Response{}, err
	}

	urls, err := s.files.ListURLs(ctx, file.EntityCampaign, id)
	if err != nil {
		return Response{}, fmt.Errorf("list images of campaign %d: %w", id, err)
	}

	return NewResponse(c, urls[id]), nil
}

// Create stores a pending campaign, opens its review ticket and uploads its
// images to "{company}/{campaign}". Any failure rolls the campaign back and
// discards the images already uploaded.
func (s *Service) Create(ctx context.Context, actor *principal.Principal, params CreateParams) (Response, error) {
	if !actor.CanActFor(params.CompanyID) {
		return Response{}, ErrForbidden
	}

	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return Response{}, ErrBlankName
	}

	if err := checkDates(params.StartDate, params.EndDate); err != nil {
		return Response{}, err
	}

	co, err := s.companies.Find(ctx, params.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return Response{}, ErrCompanyNotFound
		}
		return Response{}, fmt.Errorf("create campaign: %w", err)
	}

	folder := media.FolderPath(co.Name, params.Name)
	slog.Info("Creating campaign...", "company_id", params.CompanyID, "name", params.Name, "images", len(params.Images))

	var (
		id       int64
		uploaded []string
	)
	err = s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.repo.Create(ctx, Campaign{
			CompanyID:   params.CompanyID,
			Name:        params.Name,
			Description: params.Description,
			FundGoal:    params.FundGoal,
			StartDate:   params.StartDate,
			EndDate:     params.EndDate,
			Status:      StatusPending,
		})
		if err != nil {
			return err
		}

		if _, err := s.tickets.Open(ctx, ticket.OpenParams{
			Name:     params.Name + " campaign",
			EntityID: id,
			Type:     ticket.TypeCampaign,
		}); err != nil {
			return err
		}

		for _, img := range params.Images {
			f, err := s.files.Upload(ctx, file.UploadParams{
				EntityType: file.EntityCampaign,
				EntityID:   id,
				FileType:   file.TypeCampaignImage,
				Folder:     folder,
				Filename:   img.Filename,
				Body:       img.Body,
			})
			if err != nil {
				return err
			}
			uploaded = append(uploaded, f.PublicID)
		}
		return nil
	})
	if err != nil {
		s.files.Discard(ctx, uploaded...)
		return Response{}, fmt.Errorf("create campaign %q: %w", params.Name, err)
	}

	s.invalidate(ctx)
	return s.Get(ctx, id)
}

// Update replaces the editable fields of a campaign. Owners may only move a
// campaign to ARCHIVED or COMPLETED; other statuses are set through review.
func (s *Service) Update(ctx context.Context, actor *principal.Principal, params UpdateParams) (Response, error) {
	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		return Response{}, ErrBlankName
	}

	if err := checkDates(params.StartDate, params.EndDate); err != nil {
		return Response{}, err
	}

	c, err := s.Find(ctx, params.ID)
	if err != nil {
		return Response{}, err
	}

	if !actor.CanActFor(c.CompanyID) {
		return Response{}, ErrForbidden
	}

	if params.Status != nil && *params.Status != c.Status {
		if !actor.IsAdmin() && *params.Status != StatusArchived && *params.Status != StatusCompleted {
			return Response{}, ErrInvalidStatus
		}
		c.Status = *params.Status
	}

	c.Name = params.Name
	c.Description = params.Description
	c.FundGoal = params.FundGoal
	c.StartDate = params.StartDate
	c.EndDate = params.EndDate

	if err := s.repo.Update(ctx, c); err != nil {
		return Response{}, fmt.Errorf("update campaign %d: %w", c.ID, err)
	}

	s.invalidate(ctx)
	return s.Get(ctx, c.ID)
}

func (s *Service) Archive(ctx context.Context, actor *principal.Principal, id int64) error {
	c, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanActFor(c.CompanyID) {
		return ErrForbidden
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusArchived); err != nil {
		return fmt.Errorf("archive campaign %d: %w", id, err)
	}

	s.invalidate(ctx)
	return nil
}

// Delete removes a campaign without donations along with its file records.
// Pending tickets of the campaign and its fund requests are rejected. The
// stored images are discarded once the deletion commits.
func (s *Service) Delete(ctx context.Context, actor *principal.Principal, id int64) error {
	c, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if !actor.CanActFor(c.CompanyID) {
		return ErrForbidden
	}

	slog.Info("Deleting campaign...", "id", id)
	var publicIDs []string
	err = s.txMgr.RunInTx(ctx, func(ctx context.Context) error {
		donated, err := s.repo.HasDonations(ctx, id)
		if err != nil {
			return err
		}
		if donated {
			return ErrHasDonations
		}

		requestIDs, err := s.repo.FundRequestIDs(ctx, id)
		if err != nil {
			return err
		}
		if err := s.tickets.Withdraw(ctx, ticket.TypeFundRequest, withdrawnMessage, requestIDs...); err != nil {
			return err
		}
		if err := s.tickets.Withdraw(ctx, ticket.TypeCampaign, withdrawnMessage, id); err != nil {
			return err
		}

		if publicIDs, err = s.files.DeleteAll(ctx, file.EntityCampaign, id); err != nil {
			return err
		}

		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete campaign %d: %w", id, err)
	}

	s.files.Discard(ctx, publicIDs...)
	s.invalidate(ctx)
	return nil
}

// Review activates or rejects a campaign once its ticket is decided. It runs
// inside the ticket transaction, so the list cache is cleared by Reviewed.
func (s *Service) Review(ctx context.Context, id int64, approved bool) error {
	status := StatusRejected
	if approved {
		status = StatusActive
	}

	if _, err := s.repo.Find(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: %w", ticket.ErrEntityNotFound, err)
		}
		return fmt.Errorf("find campaign %d: %w", id, err)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set campaign %d %s: %w", id, status, err)
	}
	return nil
}

// Reviewed is called once a campaign review has committed.
func (s *Service) Reviewed(ctx context.Context, _ int64, _ bool) {
	s.invalidate(ctx)
}

// AddRaisedFunds credits a donation to a campaign. Callers running it inside a
// transaction call InvalidateCache after committing.
func (s *Service) AddRaisedFunds(ctx context.Context, id int64, amount decimal.Decimal) error {
	if err := s.repo.AddRaisedFunds(ctx, id, amount); err != nil {
		return fmt.Errorf("add %s to campaign %d: %w", amount, id, err)
	}
	return nil
}

func (s *Service) InvalidateCache(ctx context.Context) {
	s.invalidate(ctx)
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, CacheKeyAll); err != nil {
		slog.Error("failed to invalidate campaign cache", "reason", err)
	}
}

func checkDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return ErrInvalidDates
	}
	return nil
}
