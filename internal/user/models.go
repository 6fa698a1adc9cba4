package user

import "time"

const (
	TierBronze   = "BRONZE"
	TierSilver   = "SILVER"
	TierGold     = "GOLD"
	TierPlatinum = "PLATINUM"
)

// User carries the lifetime progression state. TotalDistanceM is in meters;
// kilometers appear only inside the XP formula.
type User struct {
	ID             string    `json:"id"`
	Nickname       string    `json:"nickname"`
	Tier           string    `json:"tier"`
	TotalXP        int64     `json:"total_xp"`
	TotalDistanceM float64   `json:"total_distance_m"`
	CreatedAt      time.Time `json:"created_at"`
}
