package service

import (
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

// MinOwnershipTenureDays - сколько полных дней OFFICER должен состоять в компании до передачи владения
const MinOwnershipTenureDays = 7

const day = 24 * time.Hour

// DaysSinceJoined - число полных суток с момента вступления
func DaysSinceJoined(joinedAt, now time.Time) int {
	elapsed := now.Sub(joinedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / day)
}

func checkTransferTenure(joinedAt, now time.Time) error {
	days := DaysSinceJoined(joinedAt, now)
	if days < MinOwnershipTenureDays {
		return domain.NewConflictError(
			"officer must be a member for at least %d days: current %d days, %d days remaining",
			MinOwnershipTenureDays, days, MinOwnershipTenureDays-days,
		)
	}
	return nil
}
