package nakama

import (
	"context"
	"errors"
	"testing"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"napoleon/internal/ports"
)

// fakeStorage is an in-memory achievementStorage with version checking.
type fakeStorage struct {
	values   map[string]string
	versions map[string]int
	writes   int
	failNext bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		values:   make(map[string]string),
		versions: make(map[string]int),
	}
}

func (fs *fakeStorage) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	var out []*api.StorageObject
	for _, r := range reads {
		value, ok := fs.values[r.UserID]
		if !ok {
			continue
		}
		out = append(out, &api.StorageObject{
			Collection: r.Collection,
			Key:        r.Key,
			UserId:     r.UserID,
			Value:      value,
			Version:    version(fs.versions[r.UserID]),
		})
	}
	return out, nil
}

func (fs *fakeStorage) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	if fs.failNext {
		fs.failNext = false
		return nil, errors.New("version mismatch")
	}
	for _, w := range writes {
		_, exists := fs.values[w.UserID]
		if w.Version == "*" && exists {
			return nil, errors.New("object already exists")
		}
		if w.Version != "" && w.Version != "*" && w.Version != version(fs.versions[w.UserID]) {
			return nil, errors.New("version mismatch")
		}
		fs.values[w.UserID] = w.Value
		fs.versions[w.UserID]++
		fs.writes++
	}
	return nil, nil
}

func version(n int) string {
	return string(rune('a' + n))
}

func TestAchievementsGetMissingUser(t *testing.T) {
	adapter := NewNakamaAchievementsAdapter(newFakeStorage())
	flags, err := adapter.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if flags != (ports.AchievementFlags{}) {
		t.Fatalf("missing user flags = %+v, want zero", flags)
	}
}

func TestAchievementsRecordIsMonotonic(t *testing.T) {
	storage := newFakeStorage()
	adapter := NewNakamaAchievementsAdapter(storage)
	ctx := context.Background()

	if err := adapter.Record(ctx, "u1", ports.AchievementFlags{Played: true}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := adapter.Record(ctx, "u1", ports.AchievementFlags{WonNormally: true}); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Recording the zero value must never clear what is set.
	if err := adapter.Record(ctx, "u1", ports.AchievementFlags{}); err != nil {
		t.Fatalf("record: %v", err)
	}

	flags, err := adapter.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !flags.Played || !flags.WonNormally || flags.WonSpecially {
		t.Fatalf("flags = %+v", flags)
	}
}

func TestAchievementsRecordSkipsNoopWrites(t *testing.T) {
	storage := newFakeStorage()
	adapter := NewNakamaAchievementsAdapter(storage)
	ctx := context.Background()

	if err := adapter.Record(ctx, "u1", ports.AchievementFlags{Played: true}); err != nil {
		t.Fatalf("record: %v", err)
	}
	writes := storage.writes
	if err := adapter.Record(ctx, "u1", ports.AchievementFlags{Played: true}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if storage.writes != writes {
		t.Fatalf("no-op record still wrote storage (%d -> %d)", writes, storage.writes)
	}
}

func TestAchievementsRecordRetriesVersionRace(t *testing.T) {
	storage := newFakeStorage()
	adapter := NewNakamaAchievementsAdapter(storage)
	ctx := context.Background()

	storage.failNext = true
	if err := adapter.Record(ctx, "u1", ports.AchievementFlags{Played: true}); err != nil {
		t.Fatalf("record should survive one lost race: %v", err)
	}
	flags, _ := adapter.Get(ctx, "u1")
	if !flags.Played {
		t.Fatalf("flags = %+v", flags)
	}
}
