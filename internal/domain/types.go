package domain

// RiskLevel classifies a synthetic client's risk bucket.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ClientStatus is the lifecycle classification of a synthetic client.
type ClientStatus string

const (
	StatusActive   ClientStatus = "active"
	StatusInactive ClientStatus = "inactive"
	StatusProspect ClientStatus = "prospect"
)

// Campaign display strings mirrored from the campaignActive flag.
const (
	CampaignWith    = "with campaign"
	CampaignWithout = "without campaign"
)

// Dashboard category keys used for empty-state messaging.
const (
	CategoryActive          = "active"
	CategoryInactive        = "inactive"
	CategoryProspect        = "prospect"
	CategoryWithCampaign    = "withCampaign"
	CategoryWithoutCampaign = "withoutCampaign"
)

// Pagination carries paging params and totals between pipeline stages;
// it is never serialized itself.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}
