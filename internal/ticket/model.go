package ticket

import (
	"time"

	"github.com/peaceoutommy/DMA-API/internal/file"
)

type Type string

const (
	TypeCompany     Type = "COMPANY"
	TypeCampaign    Type = "CAMPAIGN"
	TypeFundRequest Type = "FUND_REQUEST"
)

// EntityType is the file owner type of the ticket's entity.
func (t Type) EntityType() file.EntityType {
	switch t {
	case TypeCompany:
		return file.EntityCompany
	case TypeCampaign:
		return file.EntityCampaign
	default:
		return file.EntityFundRequest
	}
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Ticket asks an administrator to approve or reject a company, campaign or fund request.
type Ticket struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	EntityID       int64      `json:"entity_id"`
	Type           Type       `json:"type"`
	Message        string     `json:"message"`
	AdditionalInfo *string    `json:"additional_info,omitempty"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
}

type Detail struct {
	Ticket Ticket          `json:"ticket"`
	Files  []file.Response `json:"files"`
}
