// Package audio tracks the music players the bot currently holds. The
// registry is the read surface the statistics collectors use; the playback
// layer registers and updates players as voice connections come and go.
package audio

import "sync"

type Player struct {
	GuildID   string
	ChannelID string
	Playing   bool
}

// Registry holds every known player. A player is active while it is playing
// a track; paused and idle players still count towards the total.
type Registry struct {
	mut     sync.RWMutex
	players map[string]*Player
}

func NewRegistry() *Registry {
	return &Registry{
		players: make(map[string]*Player),
	}
}

// Connect registers a player for a guild, replacing any previous one.
func (r *Registry) Connect(guildID, channelID string) {
	r.mut.Lock()
	defer r.mut.Unlock()

	r.players[guildID] = &Player{
		GuildID:   guildID,
		ChannelID: channelID,
	}
}

// Disconnect drops the guild's player entirely.
func (r *Registry) Disconnect(guildID string) {
	r.mut.Lock()
	defer r.mut.Unlock()

	delete(r.players, guildID)
}

// SetPlaying flips the playing state of a guild's player, if any.
func (r *Registry) SetPlaying(guildID string, playing bool) {
	r.mut.Lock()
	defer r.mut.Unlock()

	if player, ok := r.players[guildID]; ok {
		player.Playing = playing
	}
}

// Player returns the guild's player, if any.
func (r *Registry) Player(guildID string) (*Player, bool) {
	r.mut.RLock()
	defer r.mut.RUnlock()

	player, ok := r.players[guildID]
	return player, ok
}

// Active counts players currently playing a track.
func (r *Registry) Active() int {
	r.mut.RLock()
	defer r.mut.RUnlock()

	active := 0
	for _, player := range r.players {
		if player.Playing {
			active++
		}
	}

	return active
}

// Total counts every registered player.
func (r *Registry) Total() int {
	r.mut.RLock()
	defer r.mut.RUnlock()

	return len(r.players)
}
