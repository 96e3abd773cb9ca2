package donation

import "time"

// Donation is a completed payment to a campaign. Amount is in cents.
type Donation struct {
	ID              int64     `json:"id"`
	CampaignID      int64     `json:"campaign_id"`
	CampaignName    string    `json:"campaign_name"`
	UserID          int64     `json:"user_id"`
	Amount          int64     `json:"amount"`
	PaymentIntentID string    `json:"payment_intent_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type Intent struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}
