package ports

import "context"

// AchievementFlags are a user's persisted milestone flags. All three are
// monotonic: once set they never clear, whatever later rounds bring.
type AchievementFlags struct {
	Played       bool `json:"played"`
	WonNormally  bool `json:"won_normally"`
	WonSpecially bool `json:"won_specially"`
}

// Merge ORs the other flags in and reports whether anything changed.
func (f *AchievementFlags) Merge(other AchievementFlags) bool {
	changed := false
	if other.Played && !f.Played {
		f.Played = true
		changed = true
	}
	if other.WonNormally && !f.WonNormally {
		f.WonNormally = true
		changed = true
	}
	if other.WonSpecially && !f.WonSpecially {
		f.WonSpecially = true
		changed = true
	}
	return changed
}

// AchievementsPort persists per-user achievement flags.
type AchievementsPort interface {
	// Get returns the user's current flags; a user with no record gets the
	// zero value.
	Get(ctx context.Context, userID string) (AchievementFlags, error)

	// Record merges the given flags into the user's record. Implementations
	// must never clear a previously set flag.
	Record(ctx context.Context, userID string, flags AchievementFlags) error
}
