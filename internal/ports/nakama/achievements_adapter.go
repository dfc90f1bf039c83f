package nakama

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"napoleon/internal/ports"
)

const (
	achievementsCollection = "achievements"
	achievementsKey        = "flags"
)

// achievementStorage is the slice of runtime.NakamaModule the adapter needs.
type achievementStorage interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// NakamaAchievementsAdapter implements ports.AchievementsPort on Nakama
// storage, using object versions for compare-and-swap so concurrent match
// results cannot clear each other's flags.
type NakamaAchievementsAdapter struct {
	storage achievementStorage
}

// NewNakamaAchievementsAdapter creates the storage-backed adapter.
func NewNakamaAchievementsAdapter(storage achievementStorage) *NakamaAchievementsAdapter {
	return &NakamaAchievementsAdapter{storage: storage}
}

// Get reads the user's flags. Missing records return the zero value.
func (a *NakamaAchievementsAdapter) Get(ctx context.Context, userID string) (ports.AchievementFlags, error) {
	flags, _, err := a.read(ctx, userID)
	return flags, err
}

// Record merges flags into the user's record with a bounded CAS retry.
func (a *NakamaAchievementsAdapter) Record(ctx context.Context, userID string, flags ports.AchievementFlags) error {
	const maxAttempts = 3
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		current, version, err := a.read(ctx, userID)
		if err != nil {
			return err
		}
		if !current.Merge(flags) {
			return nil
		}
		data, err := json.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to marshal achievement flags: %w", err)
		}
		write := &runtime.StorageWrite{
			Collection:      achievementsCollection,
			Key:             achievementsKey,
			UserID:          userID,
			Value:           string(data),
			Version:         version,
			PermissionRead:  1, // owner read
			PermissionWrite: 0, // server only
		}
		if write.Version == "" {
			write.Version = "*" // create only
		}
		if _, err := a.storage.StorageWrite(ctx, []*runtime.StorageWrite{write}); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	return fmt.Errorf("achievement write for %s lost the version race: %w", userID, lastErr)
}

func (a *NakamaAchievementsAdapter) read(ctx context.Context, userID string) (ports.AchievementFlags, string, error) {
	objs, err := a.storage.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: achievementsCollection,
		Key:        achievementsKey,
		UserID:     userID,
	}})
	if err != nil {
		return ports.AchievementFlags{}, "", fmt.Errorf("failed to read achievements for %s: %w", userID, err)
	}
	if len(objs) == 0 {
		return ports.AchievementFlags{}, "", nil
	}
	var flags ports.AchievementFlags
	if err := json.Unmarshal([]byte(objs[0].Value), &flags); err != nil {
		return ports.AchievementFlags{}, "", fmt.Errorf("corrupt achievement record for %s: %w", userID, err)
	}
	return flags, objs[0].Version, nil
}
