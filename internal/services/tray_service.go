package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/diegocode81/api-mock-adn-agenda/internal/domain"
	"github.com/diegocode81/api-mock-adn-agenda/internal/domain/models"
	"github.com/diegocode81/api-mock-adn-agenda/internal/utils"
)

const (
	defaultPage     = 1
	defaultPageSize = 10

	emptyCategoryMessage = "No records available"
)

// TrayQuery carries the raw query parameters for one listing request.
// Optional filters are pointers so an explicitly empty value can be
// rejected instead of silently treated as absent.
type TrayQuery struct {
	UserID         string
	Page           string
	PageSize       string
	ClientStatus   *string
	CampaignActive *string
}

// TrayService assembles the client listing: generate, filter, categorize
// and paginate, all recomputed per request. Now is the injectable clock.
type TrayService struct {
	RequestID string
	Now       func() time.Time
}

func (s TrayService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// List validates the query and produces the full listing payload.
func (s TrayService) List(q TrayQuery) (models.TrayResponse, error) {
	userID := utils.NormalizeParam(q.UserID)
	if userID == "" || !IsAnalyst(userID) {
		return models.TrayResponse{}, domain.InvalidUser("userId is required and must be adn1 or adn2")
	}

	records := generateClients(userID, s.now())

	filtered, err := filterClients(records, q.ClientStatus, q.CampaignActive)
	if err != nil {
		return models.TrayResponse{}, err
	}

	categories, sections, emptyMessages := categorize(filtered)
	paging, pageItems := paginate(filtered, parsePositive(q.Page, defaultPage), parsePositive(q.PageSize, defaultPageSize))

	items := make([]models.ClientItem, 0, len(pageItems))
	for _, r := range pageItems {
		items = append(items, models.ClientItem{
			Name:           r.Name,
			RiskLevel:      r.RiskLevel,
			CampaignStatus: r.CampaignStatus,
			OfferCount:     r.OfferCount,
			ClientStatus:   r.ClientStatus,
		})
	}

	utils.LogEvent(s.RequestID, "tray", "list",
		fmt.Sprintf("userId=%s page=%d pageSize=%d total=%d", userID, paging.Page, paging.PageSize, paging.Total))

	return models.TrayResponse{
		UserID:                  userID,
		Page:                    paging.Page,
		PageSize:                paging.PageSize,
		Total:                   paging.Total,
		Categories:              categories,
		EmptyMessagesByCategory: emptyMessages,
		Sections:                sections,
		Items:                   items,
		UpdatedAt:               s.now(),
	}, nil
}

// filterClients applies the optional clientStatus and campaignActive
// filters (AND composition), preserving order. Malformed values fail
// the whole request.
func filterClients(records []models.ClientRecord, statusOpt, campaignOpt *string) ([]models.ClientRecord, error) {
	out := records

	if statusOpt != nil {
		status := domain.ClientStatus(utils.NormalizeParam(*statusOpt))
		switch status {
		case domain.StatusActive, domain.StatusInactive, domain.StatusProspect:
		default:
			return nil, domain.InvalidFilter("clientStatus", "use active|inactive|prospect")
		}
		out = keep(out, func(r models.ClientRecord) bool { return r.ClientStatus == status })
	}

	if campaignOpt != nil {
		var want bool
		switch utils.NormalizeParam(*campaignOpt) {
		case "true":
			want = true
		case "false":
			want = false
		default:
			return nil, domain.InvalidFilter("campaignActive", "use true|false")
		}
		out = keep(out, func(r models.ClientRecord) bool { return r.CampaignActive == want })
	}

	return out, nil
}

func keep(records []models.ClientRecord, pred func(models.ClientRecord) bool) []models.ClientRecord {
	out := make([]models.ClientRecord, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// categorize computes the category counters, the section counters and
// the empty-state messages over an already filtered collection. A
// category appears in the message map only when its count is zero.
func categorize(records []models.ClientRecord) (models.CategoryCounts, models.SectionCounts, map[string]string) {
	var c models.CategoryCounts
	for _, r := range records {
		switch r.ClientStatus {
		case domain.StatusActive:
			c.Active++
		case domain.StatusInactive:
			c.Inactive++
		case domain.StatusProspect:
			c.Prospect++
		}
		if r.CampaignActive {
			c.WithCampaign++
		} else {
			c.WithoutCampaign++
		}
		if r.IsNewProspect {
			c.ProspectWithCampaign++
		}
	}

	sections := models.SectionCounts{
		Active:               c.Active,
		Inactive:             c.Inactive,
		Prospect:             c.Prospect,
		ProspectWithCampaign: c.ProspectWithCampaign,
	}

	emptyMessages := map[string]string{}
	for category, count := range map[string]int{
		domain.CategoryActive:          c.Active,
		domain.CategoryInactive:        c.Inactive,
		domain.CategoryProspect:        c.Prospect,
		domain.CategoryWithCampaign:    c.WithCampaign,
		domain.CategoryWithoutCampaign: c.WithoutCampaign,
	} {
		if count == 0 {
			emptyMessages[category] = emptyCategoryMessage
		}
	}

	return c, sections, emptyMessages
}

// paginate slices the filtered collection. Total always reflects the
// full filtered count; a page beyond the end yields an empty slice.
// Bounds are checked by division before multiplying so an absurdly
// large page or pageSize cannot overflow into negative slice indices.
func paginate(records []models.ClientRecord, page, pageSize int) (domain.Pagination, []models.ClientRecord) {
	total := len(records)

	start := total
	if page-1 <= total/pageSize {
		start = (page - 1) * pageSize
		if start > total {
			start = total
		}
	}

	end := total
	if pageSize < total-start {
		end = start + pageSize
	}

	return domain.Pagination{Page: page, PageSize: pageSize, Total: total}, records[start:end]
}

// parsePositive parses a page/pageSize parameter: missing or
// non-numeric values take the fallback, fractional values are floored,
// and the result is never below 1.
func parsePositive(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return fallback
		}
		n = int(math.Floor(f))
	}
	if n < 1 {
		return 1
	}
	return n
}
