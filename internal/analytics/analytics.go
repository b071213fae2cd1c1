package analytics

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	eventStartup = "MCP_STARTUP"
	eventTools   = "MCP_TOOLS_USED"
)

// TrackEvent is a single usage event. Tool arguments are never recorded.
type TrackEvent struct {
	ID         string
	Event      string
	SessionID  string
	Timestamp  time.Time
	Properties map[string]any
}

// StartupEventInfo describes how the server was started.
type StartupEventInfo struct {
	Version   string
	Transport string
	ReadOnly  bool
	ToolCount int
}

// Tracker emits events as structured log records tagged with a per-process session id.
type Tracker struct {
	logger    *slog.Logger
	sessionID string
	enabled   atomic.Bool
	now       func() time.Time
}

// NewTracker creates a tracker writing to logger. A nil logger uses slog.Default().
func NewTracker(logger *slog.Logger, enabled bool) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		logger:    logger.With("component", "analytics"),
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
	t.enabled.Store(enabled)
	return t
}

func (t *Tracker) Disable() {
	t.enabled.Store(false)
}

func (t *Tracker) Enable() {
	t.enabled.Store(true)
}

func (t *Tracker) IsEnabled() bool {
	return t.enabled.Load()
}

// SessionID identifies this process in every emitted event.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

func (t *Tracker) EmitEvent(event TrackEvent) {
	if !t.IsEnabled() {
		return
	}
	attrs := []any{
		"event", event.Event,
		"eventId", event.ID,
		"sessionId", event.SessionID,
		"timestamp", event.Timestamp,
	}
	for k, v := range event.Properties {
		attrs = append(attrs, k, v)
	}
	t.logger.Info("analytics event", attrs...)
}

func (t *Tracker) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return t.newEvent(eventStartup, map[string]any{
		"version":   info.Version,
		"transport": info.Transport,
		"readOnly":  info.ReadOnly,
		"toolCount": info.ToolCount,
	})
}

func (t *Tracker) NewToolsEvent(toolName string) TrackEvent {
	return t.newEvent(eventTools, map[string]any{"tool": toolName})
}

func (t *Tracker) newEvent(name string, props map[string]any) TrackEvent {
	return TrackEvent{
		ID:         uuid.NewString(),
		Event:      name,
		SessionID:  t.sessionID,
		Timestamp:  t.now().UTC(),
		Properties: props,
	}
}
