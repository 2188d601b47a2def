package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sortrush/sortrush/go/internal/generator"
	"github.com/sortrush/sortrush/go/internal/models"
	"github.com/sortrush/sortrush/go/internal/session"
	"github.com/sortrush/sortrush/go/internal/session/events"
)

// Service is the presentation adapter: it owns the WebSocket connection
// manager, translates client commands into session calls, and pushes
// state and outcome events back out.
type Service struct {
	settings models.GameSettings
	registry *session.Registry
	manager  *ConnectionManager
}

// NewService creates the gateway service.
func NewService(settings models.GameSettings, registry *session.Registry, config ConnectionConfig) *Service {
	s := &Service{
		settings: settings,
		registry: registry,
		manager:  NewConnectionManager(config),
	}
	s.manager.SetCommandHandler(s.handleCommand)
	return s
}

// Start runs the connection manager until the context ends.
func (s *Service) Start(ctx context.Context) {
	s.manager.Start(ctx)
}

// RegisterRoutes registers REST and WebSocket routes with an HTTP mux.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}/state", s.handleState)
	mux.HandleFunc("GET /api/sessions/{id}/history", s.handleHistory)
	mux.HandleFunc("/ws/session", s.handleSessionConnection)
	mux.HandleFunc("GET /ws/stats", s.handleConnectionStats)
}

// Stats returns connection counts for the info endpoint.
func (s *Service) Stats() (connections, sessions int) {
	return s.manager.GetStats()
}

func (s *Service) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	seed, err := generator.NewSeed()
	if err != nil {
		log.Error().Err(err).Msg("failed to seed generator")
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	sess := session.New(uuid.New(), s.settings, generator.New(seed), s.notifyOutcome)
	s.registry.Put(sess)

	log.Info().
		Str("session_id", sess.ID.String()).
		Int("total_rounds", s.settings.TotalRounds).
		Int("round_seconds", s.settings.RoundSeconds).
		Msg("session created")

	writeJSON(w, http.StatusCreated, StateFromSnapshot(sess.Snapshot()))
}

func (s *Service) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, StateFromSnapshot(sess.Snapshot()))
}

func (s *Service) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromPath(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, HistoryFromSession(sess.Rounds(), sess.History()))
}

// handleSessionConnection upgrades a client to WebSocket for a session.
func (s *Service) handleSessionConnection(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("session_id")
	if idStr == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid session_id format", http.StatusBadRequest)
		return
	}
	if _, err := s.registry.Get(id); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	if err := s.manager.UpgradeConnection(w, r, id); err != nil {
		log.Error().Err(err).Str("session_id", id.String()).Msg("failed to upgrade WebSocket connection")
		http.Error(w, "failed to upgrade connection", http.StatusInternalServerError)
	}
}

func (s *Service) handleConnectionStats(w http.ResponseWriter, r *http.Request) {
	connections, sessions := s.manager.GetStats()
	writeJSON(w, http.StatusOK, map[string]int{
		"total_connections": connections,
		"active_sessions":   sessions,
	})
}

// handleCommand dispatches a parsed client command to its session. Invalid
// commands fall through silently, matching the session's own no-op policy.
func (s *Service) handleCommand(sessionID uuid.UUID, cmd ClientCommand) {
	sess, err := s.registry.Get(sessionID)
	if err != nil {
		log.Warn().Str("session_id", sessionID.String()).Msg("command for unknown session")
		return
	}

	switch cmd.Type {
	case "start":
		before := sess.Status()
		if before == models.SessionStatusCompleted {
			return
		}
		resuming := before == models.SessionStatusPaused
		sess.Start()
		if resuming {
			s.broadcastEvent(sess.ID, EventTypeSessionResumed, events.SessionResumedPayload{
				SessionID:    sess.ID.String(),
				RemainingSec: sess.Remaining(),
			})
		} else {
			s.broadcastEvent(sess.ID, EventTypeSessionStarted, events.SessionStartedPayload{
				SessionID:    sess.ID.String(),
				TotalRounds:  s.settings.TotalRounds,
				RoundSeconds: s.settings.RoundSeconds,
			})
		}
	case "pause":
		sess.Pause()
		s.broadcastEvent(sess.ID, EventTypeSessionPaused, events.SessionPausedPayload{
			SessionID:    sess.ID.String(),
			RemainingSec: sess.Remaining(),
		})
	case "restart":
		sess.Restart()
		s.broadcastEvent(sess.ID, EventTypeSessionRestarted, events.SessionRestartedPayload{
			SessionID:   sess.ID.String(),
			TotalRounds: s.settings.TotalRounds,
		})
	case "pick":
		if cmd.Index == nil {
			return
		}
		sess.Pick(*cmd.Index)
	default:
		log.Warn().Str("type", cmd.Type).Msg("unknown client command - ignoring")
		return
	}

	s.broadcastState(sess)
}

// notifyOutcome is the fire-and-forget round notification hook handed to
// every session. It pushes the outcome cue and a fresh state snapshot.
func (s *Service) notifyOutcome(payload events.RoundFinalizedPayload) {
	id, err := uuid.Parse(payload.SessionID)
	if err != nil {
		return
	}

	s.broadcastEvent(id, EventTypeOutcome, payload)
	if payload.SessionDone {
		s.broadcastEvent(id, EventTypeSessionCompleted, payload)
	}

	if sess, err := s.registry.Get(id); err == nil {
		s.broadcastState(sess)
	}
}

func (s *Service) broadcastState(sess *session.Session) {
	s.manager.BroadcastToSession(sess.ID, &GameEvent{
		Type:      EventTypeStateSync,
		SessionID: sess.ID.String(),
		At:        time.Now(),
		Payload:   StateFromSnapshot(sess.Snapshot()),
	})
}

func (s *Service) broadcastEvent(id uuid.UUID, eventType EventType, payload interface{}) {
	s.manager.BroadcastToSession(id, &GameEvent{
		Type:      eventType,
		SessionID: id.String(),
		At:        time.Now(),
		Payload:   payload,
	})
}

func (s *Service) sessionFromPath(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return nil, false
	}
	sess, err := s.registry.Get(id)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
