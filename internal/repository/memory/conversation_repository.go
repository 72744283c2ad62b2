package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ConversationState is the per-session routing context kept between turns.
// ActiveArtifactAgentId is set when a turn's plan produced an artifact;
// the next turn's router uses it for the continuation tier.
type ConversationState struct {
	SessionId             string `json:"session_id"`
	ActiveArtifactAgentId string `json:"active_artifact_agent_id"`
	LastAgentId           string `json:"last_agent_id"`
	LastQuery             string `json:"last_query"`
}

type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Default expiration 1 hour, purge sweep every 10 minutes. A chat
	// session idle longer than that loses only its continuation hint.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(state *ConversationState) {
	r.cache.Set(state.SessionId, state, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(sessionId string) (*ConversationState, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*ConversationState), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
