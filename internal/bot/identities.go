package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"

	"napoleon/internal/domain"
)

// Identity is one bot persona from the identity pool, keyed by archetype.
type Identity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Archetype   string `json:"archetype"`
	AvatarIndex int    `json:"avatar_index"`
}

var (
	identities    []Identity
	identityByKey map[string]Identity
	botIDMap      map[string]bool
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the bot personas from the given path. Safe to call
// more than once; only the first call reads the file.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		identityByKey = make(map[string]Identity, len(identities))
		botIDMap = make(map[string]bool, len(identities))
		for _, id := range identities {
			identityByKey[id.Archetype] = id
			if id.UserID != "" {
				botIDMap[id.UserID] = true
			}
		}
	})
	return loadErr
}

// ProvisionBots creates or refreshes the bot accounts in Nakama and tags them
// with is_bot metadata so clients can tell them apart.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) error {
	var err error
	provisionOnce.Do(func() {
		for i := range identities {
			id := &identities[i]
			if id.DeviceID == "" {
				continue
			}
			userID, username, _, authErr := nk.AuthenticateDevice(ctx, id.DeviceID, id.Username, true)
			if authErr != nil {
				logger.Error("ProvisionBots: failed to authenticate bot %s: %v", id.Username, authErr)
				continue
			}
			id.UserID = userID
			id.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"archetype":    id.Archetype,
				"avatar_index": id.AvatarIndex,
			}
			if authErr = nk.AccountUpdateId(ctx, userID, id.Username, metadata, id.DisplayName, "", "", "", ""); authErr != nil {
				logger.Warn("ProvisionBots: failed to update bot account %s: %v", userID, authErr)
			}

			identityByKey[id.Archetype] = *id
			botIDMap[userID] = true
			logger.Info("ProvisionBots: bot %s (%s) ready as %s", id.DisplayName, userID, id.Archetype)
		}
	})
	return err
}

// IdentityFor returns the persona for an archetype, with a generated
// placeholder when the pool has no entry.
func IdentityFor(a domain.Archetype) Identity {
	if id, ok := identityByKey[a.Key()]; ok {
		if id.UserID == "" {
			id.UserID = fmt.Sprintf("bot-%s", a.Key())
		}
		return id
	}
	return Identity{
		UserID:      fmt.Sprintf("bot-%s", a.Key()),
		Username:    a.Key(),
		DisplayName: a.Key(),
		Archetype:   a.Key(),
	}
}

// IsBot reports whether the user ID belongs to the bot pool. Placeholder ids
// from IdentityFor count as bots even before provisioning ran.
func IsBot(userID string) bool {
	if botIDMap != nil && botIDMap[userID] {
		return true
	}
	return strings.HasPrefix(userID, "bot-")
}
