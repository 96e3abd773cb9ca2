package funding

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Request asks for the release of funds raised by a campaign.
type Request struct {
	ID         int64           `json:"id"`
	CampaignID int64           `json:"campaign_id"`
	CompanyID  int64           `json:"company_id"`
	Message    string          `json:"message"`
	Amount     decimal.Decimal `json:"amount"`
	Status     Status          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}
