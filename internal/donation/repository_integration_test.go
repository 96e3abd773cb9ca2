package donation_test

import (
	"errors"
	"testing"

	"github.com/peaceoutommy/DMA-API/internal/donation"
	"github.com/peaceoutommy/DMA-API/internal/platform/db"
)

func TestIntegrationRepository(t *testing.T) {
	conn, ctx := db.Setup(t)
	repo := donation.NewRepository(conn)

	_, err := repo.Create(ctx, donation.Donation{
		CampaignID:      99999999,
		UserID:          99999999,
		Amount:          500,
		PaymentIntentID: "pi_integration_missing",
	})
	if !errors.Is(err, donation.ErrUnknownReference) {
		t.Errorf("repo.Create() unknown campaign = %v, want: %v", err, donation.ErrUnknownReference)
	}

	donations, err := repo.ListByUser(ctx, 99999999)
	if err != nil || len(donations) != 0 {
		t.Errorf("repo.ListByUser() = %v, %v, want empty", donations, err)
	}
}
