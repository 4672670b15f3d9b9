package bot

import (
	"encoding/json"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/predaa/martine/host"
)

// presenceCache keeps the latest per-platform presence of every user. The
// gateway only ships client_status inside raw PRESENCE_UPDATE payloads, so
// the cache is fed from the raw event stream instead of session state.
type presenceCache struct {
	mut      sync.RWMutex
	statuses map[string]host.ClientStatus
}

func newPresenceCache() *presenceCache {
	return &presenceCache{
		statuses: make(map[string]host.ClientStatus),
	}
}

func (pc *presenceCache) set(userID string, status host.ClientStatus) {
	pc.mut.Lock()
	defer pc.mut.Unlock()

	pc.statuses[userID] = status
}

func (pc *presenceCache) get(userID string) host.ClientStatus {
	pc.mut.RLock()
	defer pc.mut.RUnlock()

	return pc.statuses[userID]
}

type presencePayload struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	ClientStatus struct {
		Desktop string `json:"desktop"`
		Mobile  string `json:"mobile"`
		Web     string `json:"web"`
	} `json:"client_status"`
}

func (b *Bot) onRawEvent(s *discordgo.Session, e *discordgo.Event) {
	if e.Type != "PRESENCE_UPDATE" {
		return
	}

	var payload presencePayload
	if err := json.Unmarshal(e.RawData, &payload); err != nil {
		b.Log.With("error", err).Debug("failed to decode a presence update")
		return
	}

	if payload.User.ID == "" {
		return
	}

	b.presences.set(payload.User.ID, host.ClientStatus{
		Desktop: host.Status(payload.ClientStatus.Desktop),
		Mobile:  host.Status(payload.ClientStatus.Mobile),
		Web:     host.Status(payload.ClientStatus.Web),
	})
}
