package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fitness_tracker/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 2 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000
)

type wsEnvelope struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live leaderboard
// @Description  WebSocket stream of {"type":"ranking","data":[...]} frames.
// @Tags         ranking
// @Param        limit        query  int     false  "Top N"
// @Param        interval     query  string  false  "Push interval, e.g. 2s (max 10s)"
// @Param        interval_ms  query  int     false  "Push interval in ms"
// @Failure      400          {object}  fitness_tracker.ErrorResponse
// @Router       /ws/ranking [get]
func (h *Handler) wsRanking(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendRanking(ctx, conn, limit); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendRanking(ctx, conn, limit); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000, falling back to the default
// when the value is malformed or out of bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// startReader drains incoming frames so control messages are processed and closure is seen.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// sendRanking writes the current top-N. A lookup failure is sent as an error frame
// and does not end the stream.
func (h *Handler) sendRanking(ctx context.Context, conn *websocket.Conn, limit int) error {
	env := wsEnvelope{Type: "ranking"}
	top, err := h.services.Top(ctx, limit)
	if err != nil {
		h.log.Warnw("ws_ranking_failed", "err", err)
		env = wsEnvelope{Type: "error", Error: apperr.PublicMessage(err)}
	} else {
		env.Data = top
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
