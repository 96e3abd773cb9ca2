package campaign_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/peaceoutommy/DMA-API/internal/file"
	"github.com/peaceoutommy/DMA-API/internal/platform/cache"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/peaceoutommy/DMA-API/internal/platform/media"
	"github.com/peaceoutommy/DMA-API/internal/principal"
	"github.com/peaceoutommy/DMA-API/internal/ticket"
	"github.com/shopspring/decimal"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func owner(companyID int64) *principal.Principal {
	return &principal.Principal{UserID: 1, Role: principal.RoleCompanyAccount, CompanyID: companyID}
}

func noFiles() *file.StubRepo {
	return &file.StubRepo{
		ListByEntityFunc: func(context.Context, file.EntityType, ...int64) ([]file.AppFile, error) {
			return nil, nil
		},
	}
}

func TestService_ListIsCached(t *testing.T) {
	t.Parallel()

	calls := 0
	repo := &campaign.StubRepo{
		ListFunc: func(context.Context) ([]campaign.Campaign, error) {
			calls++
			return []campaign.Campaign{{ID: 1, CompanyID: 3, Name: "Clean Water", FundGoal: decimal.NewFromInt(100)}}, nil
		},
		FindFunc: func(_ context.Context, id int64) (campaign.Campaign, error) {
			return campaign.Campaign{ID: id, CompanyID: 3}, nil
		},
		UpdateStatusFunc: func(context.Context, int64, campaign.Status) error { return nil },
	}
	store := cache.NewMemoryCache()
	svc := campaign.NewService(campaign.Deps{
		Repo:  repo,
		Files: file.NewService(noFiles(), &media.StubStore{}),
		Cache: store,
	})

	ctx := context.Background()
	for range 2 {
		got, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("svc.List() = %v", err)
		}
		if len(got) != 1 || got[0].Name != "Clean Water" || len(got[0].ImageURLs) != 0 {
			t.Fatalf("svc.List() = %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("repo.List() calls = %d, want: 1", calls)
	}

	if err := svc.Archive(ctx, owner(3), 1); err != nil {
		t.Fatalf("svc.Archive() = %v", err)
	}
	if _, err := store.Get(ctx, campaign.CacheKeyAll); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("cache after archive = %v, want: %v", err, cache.ErrMiss)
	}
}

func TestService_CreateUploadFailure(t *testing.T) {
	t.Parallel()

	var (
		folders   []string
		discarded []string
		uploads   int
	)
	store := &media.StubStore{
		UploadFunc: func(_ context.Context, params media.UploadParams) (media.Asset, error) {
			uploads++
			folders = append(folders, params.Folder)
			if uploads == 2 {
				return media.Asset{}, errors.New("cloudinary unavailable")
			}
			return media.Asset{URL: "https://cdn.example.com/" + params.PublicID, PublicID: params.PublicID}, nil
		},
		DeleteFunc: func(_ context.Context, publicID string) error {
			discarded = append(discarded, publicID)
			return nil
		},
	}
	fileRepo := &file.StubRepo{
		CreateFunc: func(_ context.Context, f file.AppFile) (file.AppFile, error) { return f, nil },
	}
	svc := campaign.NewService(campaign.Deps{
		Repo: &campaign.StubRepo{
			CreateFunc: func(context.Context, campaign.Campaign) (int64, error) { return 8, nil },
		},
		TxMgr: &db.StubTxManager{},
		Files: file.NewService(fileRepo, store),
		Companies: &campaign.StubCompanyFinder{
			FindFunc: func(_ context.Context, id int64) (company.Company, error) {
				return company.Company{ID: id, Name: "Helping Hands"}, nil
			},
		},
		Tickets: &ticket.StubOpener{
			OpenFunc: func(context.Context, ticket.OpenParams) (ticket.Ticket, error) { return ticket.Ticket{}, nil },
		},
	})

	_, err := svc.Create(context.Background(), owner(3), campaign.CreateParams{
		CompanyID:   3,
		Name:        "Clean Water",
		Description: "Wells for the village",
		FundGoal:    decimal.NewFromInt(1000),
		Images: []campaign.Image{
			{Filename: "a.png", Body: bytes.NewReader(pngHeader)},
			{Filename: "b.png", Body: bytes.NewReader(pngHeader)},
		},
	})
	if !errors.Is(err, file.ErrUpload) {
		t.Fatalf("svc.Create() = %v, want: %v", err, file.ErrUpload)
	}

	for _, f := range folders {
		if f != "Helping Hands/Clean Water" {
			t.Errorf("upload folder = %q, want: %q", f, "Helping Hands/Clean Water")
		}
	}
	if len(discarded) != 1 {
		t.Errorf("discarded = %v, want the first upload", discarded)
	}
}

func TestService_CreateChecks(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		actor   *principal.Principal
		params  campaign.CreateParams
		wantErr error
	}{
		{"other company", owner(4), campaign.CreateParams{CompanyID: 3, Name: "Clean Water"}, campaign.ErrForbidden},
		{"blank name", owner(3), campaign.CreateParams{CompanyID: 3, Name: " "}, campaign.ErrBlankName},
		{"end before start", owner(3), campaign.CreateParams{CompanyID: 3, Name: "Clean Water", StartDate: &start, EndDate: &end}, campaign.ErrInvalidDates},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := campaign.NewService(campaign.Deps{Repo: &campaign.StubRepo{}})
			if _, err := svc.Create(context.Background(), tt.actor, tt.params); !errors.Is(err, tt.wantErr) {
				t.Errorf("svc.Create() = %v, want: %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_DeleteWithDonations(t *testing.T) {
	t.Parallel()

	deleted := false
	repo := &campaign.StubRepo{
		FindFunc: func(_ context.Context, id int64) (campaign.Campaign, error) {
			return campaign.Campaign{ID: id, CompanyID: 3}, nil
		},
		HasDonationsFunc: func(context.Context, int64) (bool, error) { return true, nil },
		DeleteFunc: func(context.Context, int64) error {
			deleted = true
			return nil
		},
	}
	svc := campaign.NewService(campaign.Deps{Repo: repo, TxMgr: &db.StubTxManager{}})

	if err := svc.Delete(context.Background(), owner(3), 1); !errors.Is(err, campaign.ErrHasDonations) {
		t.Errorf("svc.Delete() = %v, want: %v", err, campaign.ErrHasDonations)
	}
	if deleted {
		t.Error("campaign with donations was deleted")
	}
}

func TestService_DeleteWithdrawsTickets(t *testing.T) {
	t.Parallel()

	var (
		order     []string
		withdrawn = map[ticket.Type][]int64{}
	)
	repo := &campaign.StubRepo{
		FindFunc: func(_ context.Context, id int64) (campaign.Campaign, error) {
			return campaign.Campaign{ID: id, CompanyID: 3}, nil
		},
		HasDonationsFunc: func(context.Context, int64) (bool, error) { return false, nil },
		FundRequestIDsFunc: func(_ context.Context, campaignID int64) ([]int64, error) {
			if campaignID != 7 {
				t.Errorf("FundRequestIDs(%d), want: FundRequestIDs(7)", campaignID)
			}
			return []int64{11, 12}, nil
		},
		DeleteFunc: func(context.Context, int64) error {
			order = append(order, "delete")
			return nil
		},
	}
	fileRepo := &file.StubRepo{
		ListByEntityFunc: func(context.Context, file.EntityType, ...int64) ([]file.AppFile, error) {
			return nil, nil
		},
		DeleteByEntityFunc: func(context.Context, file.EntityType, int64) error { return nil },
	}
	tickets := &ticket.StubOpener{
		WithdrawFunc: func(_ context.Context, tt ticket.Type, message string, ids ...int64) error {
			order = append(order, "withdraw "+string(tt))
			if message == "" {
				t.Errorf("withdraw %s without a message", tt)
			}
			withdrawn[tt] = append(withdrawn[tt], ids...)
			return nil
		},
	}
	svc := campaign.NewService(campaign.Deps{
		Repo:    repo,
		TxMgr:   &db.StubTxManager{},
		Files:   file.NewService(fileRepo, &media.StubStore{}),
		Tickets: tickets,
	})

	if err := svc.Delete(context.Background(), owner(3), 7); err != nil {
		t.Fatalf("svc.Delete() = %v", err)
	}

	if got := withdrawn[ticket.TypeFundRequest]; !slices.Equal(got, []int64{11, 12}) {
		t.Errorf("withdrawn fund request tickets = %v, want: [11 12]", got)
	}
	if got := withdrawn[ticket.TypeCampaign]; !slices.Equal(got, []int64{7}) {
		t.Errorf("withdrawn campaign tickets = %v, want: [7]", got)
	}
	if len(order) == 0 || order[len(order)-1] != "delete" {
		t.Errorf("call order = %v, want tickets withdrawn before the campaign is deleted", order)
	}
}

func TestService_DeleteWithdrawFailure(t *testing.T) {
	t.Parallel()

	deleted := false
	repo := &campaign.StubRepo{
		FindFunc: func(_ context.Context, id int64) (campaign.Campaign, error) {
			return campaign.Campaign{ID: id, CompanyID: 3}, nil
		},
		HasDonationsFunc:   func(context.Context, int64) (bool, error) { return false, nil },
		FundRequestIDsFunc: func(context.Context, int64) ([]int64, error) { return nil, nil },
		DeleteFunc: func(context.Context, int64) error {
			deleted = true
			return nil
		},
	}
	failure := errors.New("tickets unavailable")
	svc := campaign.NewService(campaign.Deps{
		Repo:  repo,
		TxMgr: &db.StubTxManager{},
		Tickets: &ticket.StubOpener{
			WithdrawFunc: func(context.Context, ticket.Type, string, ...int64) error { return failure },
		},
	})

	if err := svc.Delete(context.Background(), owner(3), 7); !errors.Is(err, failure) {
		t.Errorf("svc.Delete() = %v, want: %v", err, failure)
	}
	if deleted {
		t.Error("campaign was deleted although its tickets were not withdrawn")
	}
}

func TestService_ReviewClearsCacheAfterCommit(t *testing.T) {
	t.Parallel()

	repo := &campaign.StubRepo{
		FindFunc: func(_ context.Context, id int64) (campaign.Campaign, error) {
			return campaign.Campaign{ID: id, CompanyID: 3, Status: campaign.StatusPending}, nil
		},
		UpdateStatusFunc: func(context.Context, int64, campaign.Status) error { return nil },
	}
	store := cache.NewMemoryCache()
	svc := campaign.NewService(campaign.Deps{Repo: repo, Cache: store})

	ctx := context.Background()
	if err := store.Set(ctx, campaign.CacheKeyAll, []byte("[]"), time.Minute); err != nil {
		t.Fatalf("store.Set() = %v", err)
	}

	if err := svc.Review(ctx, 1, true); err != nil {
		t.Fatalf("svc.Review() = %v", err)
	}
	if _, err := store.Get(ctx, campaign.CacheKeyAll); err != nil {
		t.Errorf("cache cleared before commit: %v", err)
	}

	svc.Reviewed(ctx, 1, true)
	if _, err := store.Get(ctx, campaign.CacheKeyAll); !errors.Is(err, cache.ErrMiss) {
		t.Errorf("cache after Reviewed() = %v, want: %v", err, cache.ErrMiss)
	}
}

func TestService_ReviewMissingCampaign(t *testing.T) {
	t.Parallel()

	repo := &campaign.StubRepo{
		FindFunc: func(context.Context, int64) (campaign.Campaign, error) {
			return campaign.Campaign{}, campaign.ErrNotFound
		},
	}
	svc := campaign.NewService(campaign.Deps{Repo: repo})

	if err := svc.Review(context.Background(), 1, true); !errors.Is(err, ticket.ErrEntityNotFound) {
		t.Errorf("svc.Review() = %v, want: %v", err, ticket.ErrEntityNotFound)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	active := campaign.StatusActive
	completed := campaign.StatusCompleted

	tests := []struct {
		name    string
		actor   *principal.Principal
		status  *campaign.Status
		wantErr error
	}{
		{"owner completes", owner(3), &completed, nil},
		{"owner activates", owner(3), &active, campaign.ErrInvalidStatus},
		{"admin activates", &principal.Principal{Role: principal.RoleAdmin}, &active, nil},
		{"unchanged", owner(3), nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &campaign.StubRepo{
				FindFunc: func(_ context.Context, id int64) (campaign.Campaign, error) {
					return campaign.Campaign{ID: id, CompanyID: 3, Status: campaign.StatusPending}, nil
				},
				UpdateFunc: func(context.Context, campaign.Campaign) error { return nil },
			}
			svc := campaign.NewService(campaign.Deps{Repo: repo, Files: file.NewService(noFiles(), &media.StubStore{})})

			_, err := svc.Update(context.Background(), tt.actor, campaign.UpdateParams{
				ID:          1,
				Name:        "Clean Water",
				Description: "Wells for the village",
				FundGoal:    decimal.NewFromInt(500),
				Status:      tt.status,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("svc.Update() = %v, want: %v", err, tt.wantErr)
			}
		})
	}
}
