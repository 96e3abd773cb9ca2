package campaign

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of campaign start and end dates.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusRejected  Status = "REJECTED"
	StatusArchived  Status = "ARCHIVED"
	StatusCompleted Status = "COMPLETED"
)

type Campaign struct {
	ID          int64
	CompanyID   int64
	Name        string
	Description string
	FundGoal    decimal.Decimal
	RaisedFunds decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Response struct {
	ID          int64           `json:"id"`
	CompanyID   int64           `json:"company_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	FundGoal    decimal.Decimal `json:"fund_goal"`
	RaisedFunds decimal.Decimal `json:"raised_funds"`
	StartDate   *string         `json:"start_date,omitempty"`
	EndDate     *string         `json:"end_date,omitempty"`
	Status      Status          `json:"status"`
	ImageURLs   []string        `json:"image_urls"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewResponse(c Campaign, imageURLs []string) Response {
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return Response{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		FundGoal:    c.FundGoal,
		RaisedFunds: c.RaisedFunds,
		StartDate:   formatDate(c.StartDate),
		EndDate:     formatDate(c.EndDate),
		Status:      c.Status,
		ImageURLs:   imageURLs,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ParseDate parses an optional YYYY-MM-DD date. A blank string yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
