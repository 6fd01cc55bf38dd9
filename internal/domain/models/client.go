package models

import (
	"time"

	"github.com/diegocode81/api-mock-adn-agenda/internal/domain"
)

// ClientRecord is a synthetic client generated per request; it is never
// persisted. CampaignStatus mirrors CampaignActive as a display string.
type ClientRecord struct {
	Name           string
	RiskLevel      domain.RiskLevel
	CampaignStatus string
	ClientStatus   domain.ClientStatus
	OfferCount     int
	CampaignActive bool
	IsNewProspect  bool
	UpdatedAt      time.Time
}

// ClientItem is the public projection of a ClientRecord. Internal flags
// (campaignActive, isNewProspect) and the per-record timestamp stay hidden.
type ClientItem struct {
	Name           string              `json:"name"`
	RiskLevel      domain.RiskLevel    `json:"riskLevel"`
	CampaignStatus string              `json:"campaignStatus"`
	OfferCount     int                 `json:"offerCount"`
	ClientStatus   domain.ClientStatus `json:"clientStatus"`
}

// CategoryCounts holds the six per-category counters over the filtered set.
type CategoryCounts struct {
	Active               int `json:"active"`
	Inactive             int `json:"inactive"`
	Prospect             int `json:"prospect"`
	WithCampaign         int `json:"withCampaign"`
	WithoutCampaign      int `json:"withoutCampaign"`
	ProspectWithCampaign int `json:"prospectWithCampaign"`
}

// SectionCounts duplicates the status-oriented counters under a separate
// grouping key; dashboard consumers read sections independently from
// categories.
type SectionCounts struct {
	Active               int `json:"active"`
	Inactive             int `json:"inactive"`
	Prospect             int `json:"prospect"`
	ProspectWithCampaign int `json:"prospectWithCampaign"`
}

// TrayResponse is the full client-listing payload.
type TrayResponse struct {
	UserID                  string            `json:"userId"`
	Page                    int               `json:"page"`
	PageSize                int               `json:"pageSize"`
	Total                   int               `json:"total"`
	Categories              CategoryCounts    `json:"categories"`
	EmptyMessagesByCategory map[string]string `json:"emptyMessagesByCategory"`
	Sections                SectionCounts     `json:"sections"`
	Items                   []ClientItem      `json:"items"`
	UpdatedAt               time.Time         `json:"updatedAt"`
}

// Registration is the fixed-shape record served by the registration lookup.
type Registration struct {
	ID     string    `json:"id"`
	Field1 string    `json:"field1"`
	Field2 float64   `json:"field2"`
	Field3 bool      `json:"field3"`
	Field4 time.Time `json:"field4"`
}
