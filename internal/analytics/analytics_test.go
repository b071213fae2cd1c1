package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracker(buf *bytes.Buffer, enabled bool) *Tracker {
	l := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := NewTracker(l, enabled)
	tr.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return tr
}

func TestTracker(t *testing.T) {
	t.Run("tools event carries session and tool name", func(t *testing.T) {
		var buf bytes.Buffer
		tr := newTestTracker(&buf, true)

		ev := tr.NewToolsEvent("get_flow")
		tr.EmitEvent(ev)

		_, err := uuid.Parse(ev.ID)
		require.NoError(t, err)
		assert.Equal(t, tr.SessionID(), ev.SessionID)
		assert.Equal(t, "MCP_TOOLS_USED", ev.Event)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "get_flow", record["tool"])
		assert.Equal(t, "analytics", record["component"])
		assert.Equal(t, ev.ID, record["eventId"])
	})

	t.Run("startup event", func(t *testing.T) {
		var buf bytes.Buffer
		tr := newTestTracker(&buf, true)

		ev := tr.NewStartupEvent(StartupEventInfo{Version: "1.0.0", Transport: "stdio", ToolCount: 8})

		assert.Equal(t, "MCP_STARTUP", ev.Event)
		assert.Equal(t, 8, ev.Properties["toolCount"])
		assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), ev.Timestamp)
	})

	t.Run("disabled tracker emits nothing", func(t *testing.T) {
		var buf bytes.Buffer
		tr := newTestTracker(&buf, false)

		tr.EmitEvent(tr.NewToolsEvent("list_flows"))
		assert.Empty(t, buf.String())

		tr.Enable()
		tr.EmitEvent(tr.NewToolsEvent("list_flows"))
		assert.True(t, strings.Contains(buf.String(), "list_flows"))

		tr.Disable()
		assert.False(t, tr.IsEnabled())
	})
}
