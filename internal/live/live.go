// Package live exposes the translation engine over a socket.io channel so
// editors can re-render macro lines as the user types.
package live

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/vk/tlvconfig/internal/api"
	"github.com/vk/tlvconfig/internal/ctxlog"
	"github.com/vk/tlvconfig/internal/metrics"
	"github.com/vk/tlvconfig/internal/request"
)

// Event names on the channel.
const (
	EventTranslate      = "translate"
	EventTranslated     = "translated"
	EventTranslateError = "translate_error"
)

// Path is where the channel is mounted.
const Path = "/socket.io/"

// ErrUnorderedPayload rejects decoded objects whose key order is already lost.
var ErrUnorderedPayload = fmt.Errorf("%w: object payloads with more than one key lose their key order; send the overrides as a JSON string",
	request.ErrMalformedBody)

// Server owns the socket.io server and its connection handlers.
type Server struct {
	io         *socket.Server
	translator api.Translator
	metrics    *metrics.Metrics
}

// New creates the channel. Connections inherit the logger stored in ctx.
func New(ctx context.Context, translator api.Translator, m *metrics.Metrics) *Server {
	s := &Server{
		io:         socket.NewServer(nil, nil),
		translator: translator,
		metrics:    m,
	}

	logger := ctxlog.FromContext(ctx)
	s.io.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		connCtx, connLogger := ctxlog.With(ctx, "transport", "socketio", "sid", client.Id())
		connLogger.Debug("Client connected.")

		client.On(EventTranslate, func(args ...any) {
			s.handleTranslate(connCtx, client, args)
		})
		client.On("disconnect", func(reason ...any) {
			connLogger.Debug("Client disconnected.", "reason", reason)
		})
	})
	logger.Debug("Live channel configured.", "path", Path)
	return s
}

// Handler serves the socket.io protocol.
func (s *Server) Handler() http.Handler {
	return s.io.ServeHandler(nil)
}

// Close disconnects all clients.
func (s *Server) Close() {
	s.io.Close(nil)
}

func (s *Server) handleTranslate(ctx context.Context, client *socket.Socket, args []any) {
	logger := ctxlog.FromContext(ctx)

	body, err := payloadBytes(args)
	if err != nil {
		s.reject(ctx, client, err)
		return
	}
	program, err := api.Translate(ctx, s.translator, body)
	if err != nil {
		s.reject(ctx, client, err)
		return
	}

	s.metrics.ObserveTranslation("socketio", metrics.OutcomeOK, len(program.Lines))
	logger.Info("Translation succeeded.", "lines", len(program.Lines))
	if err := client.Emit(EventTranslated, program); err != nil {
		logger.Error("Failed to emit translation.", "error", err)
	}
}

func (s *Server) reject(ctx context.Context, client *socket.Socket, err error) {
	logger := ctxlog.FromContext(ctx)
	outcome := api.Outcome(err)
	s.metrics.ObserveTranslation("socketio", outcome, 0)
	logger.Warn("Translation rejected.", "outcome", outcome, "error", err)
	if emitErr := client.Emit(EventTranslateError, api.ErrorBody{Message: err.Error()}); emitErr != nil {
		logger.Error("Failed to emit translation error.", "error", emitErr)
	}
}

// payloadBytes turns the first event argument into a JSON object body. A
// string argument is used verbatim and keeps its key order. A decoded object
// no longer carries its order, so only single-key objects are accepted.
func payloadBytes(args []any) ([]byte, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: %s event carries no payload", request.ErrMalformedBody, EventTranslate)
	}
	switch v := args[0].(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case map[string]any:
		if len(v) > 1 {
			return nil, ErrUnorderedPayload
		}
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: unsupported %s payload of type %T", request.ErrMalformedBody, EventTranslate, v)
	}
}
