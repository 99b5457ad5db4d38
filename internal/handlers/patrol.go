package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/guard-patrol/internal/config"
	"github.com/vancomm/guard-patrol/internal/patrol"
	"github.com/vancomm/guard-patrol/internal/render"
)

var ErrGridTooLarge = errors.New("grid too large")

type PatrolHandler struct {
	logger logrus.FieldLogger
	cfg    *config.Patrol
	ws     *config.WebSocket
}

func NewPatrolHandler(
	logger logrus.FieldLogger,
	cfg *config.Patrol,
	ws *config.WebSocket,
) *PatrolHandler {
	handler := &PatrolHandler{
		logger: logger,
		cfg:    cfg,
		ws:     ws,
	}

	return handler
}

func (h *PatrolHandler) maxBodyBytes() int64 {
	// one byte per cell plus a CRLF per row, rows at least one cell wide
	return int64(h.cfg.MaxCells) * 3
}

// workers resolves the worker count for one request. A request may ask for
// fewer workers than configured, never more; zero configured means one per
// CPU.
func (h *PatrolHandler) workers(opts AnalyzeOptionsDTO) int {
	limit := h.cfg.Workers
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	if opts.Workers != nil && *opts.Workers > 0 {
		return min(*opts.Workers, limit)
	}
	return limit
}

// analyze is shared by the HTTP and WebSocket entry points. Errors it
// returns are the client's fault.
func (h *PatrolHandler) analyze(
	ctx context.Context, body []byte, opts AnalyzeOptionsDTO,
) (*ReportDTO, error) {
	grid, start, err := patrol.ParseGrid(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	if cells := grid.Width() * grid.Height(); cells > h.cfg.MaxCells {
		return nil, fmt.Errorf("%w: %d cells, limit is %d",
			ErrGridTooLarge, cells, h.cfg.MaxCells)
	}

	report, err := patrol.Analyze(ctx, grid, start, h.workers(opts))
	if err != nil {
		return nil, err
	}

	dto := NewReportDTO(grid, start, report)
	if opts.Render {
		dto.Render = render.Report(grid, start, report, false).String()
	}

	return dto, nil
}

// Analyze handles POST /patrol with the grid as the request body.
func (h *PatrolHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseAnalyzeOptionsDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes()))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			sendErrorOrLog(w, h.logger, http.StatusRequestEntityTooLarge, ErrGridTooLarge)
			return
		}
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	dto, err := h.analyze(r.Context(), body, opts)
	if err != nil {
		if r.Context().Err() != nil {
			h.logger.WithError(err).Debug("client went away")
			return
		}
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"visited":         dto.Visited,
		"loop_placements": dto.LoopPlacements,
	}).Debug("patrol analysed")

	sendJSONOrLog(w, h.logger, dto)
}

// ConnectWS handles GET /patrol/connect. Every text message is a grid, every
// reply is a report or an error object.
func (h *PatrolHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseAnalyzeOptionsDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("upgrade")
		return
	}
	defer c.Close()

	c.SetReadLimit(h.ws.ReadLimit)

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WithError(err).Warn("read")
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}
		h.logger.WithField("bytes", len(message)).Debug("\t> grid")

		var reply any
		dto, err := h.analyze(r.Context(), message, opts)
		if err != nil {
			reply = wrapError(err)
		} else {
			reply = dto
		}

		if err := c.WriteJSON(reply); err != nil {
			h.logger.WithError(err).Error("write")
			break
		}
		h.logger.Debug("\t< report")
	}
}
