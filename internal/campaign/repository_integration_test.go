package campaign_test

import (
	"errors"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/campaign"
	"github.com/peaceoutommy/DMA-API/internal/company"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
	"github.com/shopspring/decimal"
)

func TestIntegrationRepository(t *testing.T) {
	conn, ctx := db.Setup(t)

	companies := company.NewRepository(conn)
	types, err := companies.ListTypes(ctx)
	if err != nil || len(types) == 0 {
		t.Fatalf("companies.ListTypes() = %v, %v", types, err)
	}
	companyID, err := companies.Create(ctx, company.CreateParams{
		Name:               "Campaign Integration Co",
		RegistrationNumber: "REG-CAMP-1",
		TaxID:              "TAX-CAMP-01",
		TypeID:             types[0].ID,
	})
	if err != nil {
		t.Fatalf("companies.Create() = %v", err)
	}

	repo := campaign.NewRepository(conn)
	id, err := repo.Create(ctx, campaign.Campaign{
		CompanyID:   companyID,
		Name:        "Integration campaign",
		Description: "A campaign created by the integration test",
		FundGoal:    decimal.RequireFromString("1000.00"),
		Status:      campaign.StatusPending,
	})
	if err != nil {
		t.Fatalf("repo.Create() = %v", err)
	}

	for range 3 {
		if err := repo.AddRaisedFunds(ctx, id, decimal.RequireFromString("0.10")); err != nil {
			t.Fatalf("repo.AddRaisedFunds() = %v", err)
		}
	}

	found, err := repo.Find(ctx, id)
	if err != nil {
		t.Fatalf("repo.Find() = %v", err)
	}
	if want := decimal.RequireFromString("0.30"); !found.RaisedFunds.Equal(want) {
		t.Errorf("found.RaisedFunds = %s, want: %s", found.RaisedFunds, want)
	}

	donated, err := repo.HasDonations(ctx, id)
	if err != nil || donated {
		t.Errorf("repo.HasDonations() = %v, %v, want: false", donated, err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("repo.Delete() = %v", err)
	}
	if _, err := repo.Find(ctx, id); !errors.Is(err, campaign.ErrNotFound) {
		t.Errorf("repo.Find() deleted = %v, want: %v", err, campaign.ErrNotFound)
	}
}
