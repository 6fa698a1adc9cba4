package progression

import (
	"context"
	"errors"
	"log"
	"math"

	"github.com/geosohn7/FunRun/internal/leaderboard"
	"github.com/geosohn7/FunRun/internal/user"
)

// xpPerKm awards 10 XP per kilometer of completed run distance.
const xpPerKm = 10

// Engine folds completed run distance into a user's lifetime stats. The
// run itself is the source of truth for the session outcome, so nothing
// here ever fails a completed run: an unknown user is logged and skipped.
type Engine struct {
	users user.Store
	board *leaderboard.Board
}

func NewEngine(users user.Store, board *leaderboard.Board) *Engine {
	return &Engine{users: users, board: board}
}

// Apply adds distanceM (meters) to the user's lifetime distance, awards
// floor(km * 10) XP and ratchets the tier.
func (e *Engine) Apply(ctx context.Context, userID string, distanceM float64) error {
	u, err := e.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			log.Printf("[progression] completed run for unknown user %s, skipping", userID)
			return nil
		}
		return err
	}

	u.TotalDistanceM += distanceM
	u.TotalXP += int64(math.Floor(distanceM / 1000 * xpPerKm))
	u.Tier = maxTier(u.Tier, tierFor(u.TotalXP))

	if err := e.users.Save(ctx, u); err != nil {
		return err
	}

	if e.board != nil {
		if err := e.board.SetScore(ctx, u.ID, u.TotalXP); err != nil {
			log.Printf("[progression] leaderboard update failed for user %s: %v", u.ID, err)
		}
	}
	return nil
}

func tierFor(totalXP int64) string {
	switch {
	case totalXP > 10000:
		return user.TierPlatinum
	case totalXP > 5000:
		return user.TierGold
	case totalXP > 1000:
		return user.TierSilver
	default:
		return user.TierBronze
	}
}

var tierRank = map[string]int{
	user.TierBronze:   0,
	user.TierSilver:   1,
	user.TierGold:     2,
	user.TierPlatinum: 3,
}

// maxTier keeps the tier monotone: once a threshold has been crossed the
// user never drops back below it.
func maxTier(current, computed string) string {
	if tierRank[computed] > tierRank[current] {
		return computed
	}
	return current
}
