// Package remind derives expiry reminders from the active list. Pure
// read-only view, same contract as the suggestion engine.
package remind

import (
	"fmt"
	"time"

	"github.com/mstead/pantry/internal/model"
)

// Items expiring within this many days (or already expired) get a reminder.
const windowDays = 3

// Expiring returns a human-readable reminder for every item whose expiry date
// falls within three days of now, already-expired items included. Items
// without an expiry date are skipped.
func Expiring(items []model.GroceryItem, now time.Time) []string {
	reminders := []string{}
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		days := item.ExpiryDate.DaysFrom(now)
		if days > windowDays {
			continue
		}
		reminders = append(reminders, describe(item.Name, *item.ExpiryDate, days))
	}
	return reminders
}

func describe(name string, date model.Date, days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("%s expired %d days ago (%s)", name, -days, date)
	case days == -1:
		return fmt.Sprintf("%s expired yesterday (%s)", name, date)
	case days == 0:
		return fmt.Sprintf("%s expires today (%s)", name, date)
	case days == 1:
		return fmt.Sprintf("%s expires tomorrow (%s)", name, date)
	default:
		return fmt.Sprintf("%s expires in %d days (%s)", name, days, date)
	}
}
