package services

import (
	"fmt"
	"time"

	"github.com/diegocode81/api-mock-adn-agenda/internal/domain"
	"github.com/diegocode81/api-mock-adn-agenda/internal/domain/models"
	"github.com/diegocode81/api-mock-adn-agenda/internal/utils"
)

// RegistrationService serves the single static mock registration record.
// It shares no state with the client tray pipeline.
type RegistrationService struct {
	RequestID string
	Now       func() time.Time
}

func (s RegistrationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Lookup returns the fixed-shape record for a caller. Only a missing
// userId is rejected; any non-empty value is echoed into field1.
func (s RegistrationService) Lookup(userID string) (models.Registration, error) {
	userID = utils.TrimOrEmpty(userID)
	if userID == "" {
		return models.Registration{}, domain.InvalidUser("userId query parameter is required")
	}

	utils.LogEvent(s.RequestID, "registration", "lookup", "userId="+userID)

	return models.Registration{
		ID:     "REG-001",
		Field1: fmt.Sprintf("hello-%s", userID),
		Field2: 42,
		Field3: true,
		Field4: s.now(),
	}, nil
}
