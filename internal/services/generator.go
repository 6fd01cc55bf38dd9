package services

import (
	"sort"
	"strings"
	"time"

	"github.com/diegocode81/api-mock-adn-agenda/internal/domain"
	"github.com/diegocode81/api-mock-adn-agenda/internal/domain/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The two fixed analyst identities and their generator seeds. This is a
// closed enumeration, not a hash: only whitelisted identifiers have
// defined generator behavior, and validation runs before generation.
var analystSeeds = map[string]int{
	"adn1": 17,
	"adn2": 29,
}

// IsAnalyst reports whether id is a whitelisted analyst, case-insensitive.
func IsAnalyst(id string) bool {
	_, ok := analystSeeds[strings.ToLower(strings.TrimSpace(id))]
	return ok
}

// nameCatalog holds the 24 fixed display names; its size is the size of
// every generated collection.
var nameCatalog = [...]string{
	"Zoe Álvarez", "Yolanda Pérez", "Ximena Jara", "William García", "Valeria Mora",
	"Ulises Torres", "Tomás López", "Sofía Castillo", "Rubén Delgado", "Raúl Ibarra",
	"Quito Maldonado", "Pablo Naranjo", "Olivia Villacís", "Nicolás Bravo", "María Zamora",
	"Lucía Vega", "Karina Paredes", "Jorge Ortiz", "Isabela Cedeño", "Hugo Herrera",
	"Gabriela Vinueza", "Fernando Paz", "Esteban Reinoso", "Daniela Cárdenas",
}

var (
	riskCatalog   = [...]domain.RiskLevel{domain.RiskLow, domain.RiskMedium, domain.RiskHigh}
	statusCatalog = [...]domain.ClientStatus{domain.StatusActive, domain.StatusInactive, domain.StatusProspect}
)

// generateClients deterministically produces the full client collection
// for an analyst. Everything except UpdatedAt is reproducible across
// calls for the same identifier; the collection is rebuilt per request
// so no stale state survives between requests. Unknown identifiers fall
// back to seed 0 but are rejected upstream before this runs.
func generateClients(userID string, now time.Time) []models.ClientRecord {
	seed := analystSeeds[strings.ToLower(strings.TrimSpace(userID))]

	records := make([]models.ClientRecord, 0, len(nameCatalog))
	for i, name := range nameCatalog {
		campaignActive := (i+seed*3)%2 == 0
		clientStatus := statusCatalog[(i+seed*2)%len(statusCatalog)]

		campaignStatus := domain.CampaignWithout
		if campaignActive {
			campaignStatus = domain.CampaignWith
		}

		records = append(records, models.ClientRecord{
			Name:           name,
			RiskLevel:      riskCatalog[(i+seed)%len(riskCatalog)],
			CampaignStatus: campaignStatus,
			ClientStatus:   clientStatus,
			OfferCount:     (i + seed) % 6,
			CampaignActive: campaignActive,
			IsNewProspect:  clientStatus == domain.StatusProspect && campaignActive,
			UpdatedAt:      now,
		})
	}

	// Descending alphabetical by name, Spanish collation ignoring case
	// and diacritics. A collator is not safe for concurrent use, so
	// build one per call.
	col := collate.New(language.Spanish, collate.Loose)
	sort.SliceStable(records, func(i, j int) bool {
		return col.CompareString(records[i].Name, records[j].Name) > 0
	})

	return records
}
