package file

import "time"

type EntityType string

const (
	EntityUser        EntityType = "USER"
	EntityCompany     EntityType = "COMPANY"
	EntityCampaign    EntityType = "CAMPAIGN"
	EntityFundRequest EntityType = "FUND_REQUEST"
)

type Type string

const (
	TypeCampaignImage   Type = "CAMPAIGN_IMAGE"
	TypeProfilePicture  Type = "PROFILE_PICTURE"
	TypeCompanyDocument Type = "COMPANY_DOCUMENT"
)

// AppFile records an uploaded asset and the entity it belongs to.
type AppFile struct {
	ID         int64
	URL        string
	PublicID   string
	EntityID   int64
	EntityType EntityType
	FileType   Type
	CreatedAt  time.Time
}

type Response struct {
	ID         int64      `json:"id"`
	URL        string     `json:"url"`
	EntityID   int64      `json:"entity_id"`
	EntityType EntityType `json:"entity_type"`
	FileType   Type       `json:"file_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

func NewResponse(f AppFile) Response {
	return Response{
		ID:         f.ID,
		URL:        f.URL,
		EntityID:   f.EntityID,
		EntityType: f.EntityType,
		FileType:   f.FileType,
		CreatedAt:  f.CreatedAt,
	}
}

func NewResponses(files []AppFile) []Response {
	res := make([]Response, 0, len(files))
	for _, f := range files {
		res = append(res, NewResponse(f))
	}
	return res
}
