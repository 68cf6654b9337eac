package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"digitex_go/internal/domain"
	"digitex_go/internal/infra"
	"digitex_go/internal/message"
	"digitex_go/internal/refdata"
)

const (
	maxRetries       = 10
	handshakeTimeout = 10 * time.Second
	readTimeout      = 60 * time.Second
)

// Session is the venue transport: it maintains the WebSocket connection,
// decodes frames into inbound messages, and carries outbound requests. It
// implements domain.VenueSession and domain.SnapshotRequester.
type Session struct {
	url     string
	apiKey  string
	markets []string // venue market codes to subscribe
	ref     *refdata.Registry
	inbox   chan<- *message.Inbound

	conn      *websocket.Conn
	mu        sync.RWMutex
	writeMu   sync.Mutex
	connected bool
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// New creates a venue session feeding decoded messages into inbox.
func New(url, apiKey string, markets []string, ref *refdata.Registry, inbox chan<- *message.Inbound) *Session {
	return &Session{
		url:     url,
		apiKey:  apiKey,
		markets: markets,
		ref:     ref,
		inbox:   inbox,
	}
}

// Connect starts the connection loop.
func (s *Session) Connect(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.connectionLoop(ctx)
	return nil
}

// IsConnected reports whether the socket is currently up.
func (s *Session) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}

func (s *Session) connectionLoop(ctx context.Context) {
	defer s.wg.Done()
	retryCount := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := s.connect(ctx); err != nil {
			if !domain.IsRetriable(err) {
				slog.Error("venue connection failed permanently", slog.Any("error", err))
				return
			}
			slog.Warn("venue connection failed", slog.Any("error", err), slog.Int("retry", retryCount))
			delay := infra.CalculateBackoff(retryCount)
			retryCount++
			if retryCount > maxRetries {
				retryCount = 0
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
				continue
			}
		} else {
			retryCount = 0
			s.readLoop(ctx)
		}
	}
}

func (s *Session) connect(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: handshakeTimeout}
	header := make(http.Header)
	if s.apiKey != "" {
		header.Add("Authorization", "Bearer "+s.apiKey)
	}

	conn, resp, err := dialer.DialContext(ctx, s.url, header)
	if err != nil {
		// A rejected handshake on credentials will not heal by retrying.
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return domain.NewFatalNetworkError("dial", err)
		}
		return domain.NewNetworkError("dial", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.connected = true
	s.mu.Unlock()
	infra.GlobalMetrics.IncrementConnections()

	if err := s.subscribe(); err != nil {
		s.closeConnection()
		return err
	}

	slog.Info("venue connected", slog.Int("subs", len(s.markets)))
	return nil
}

func (s *Session) subscribe() error {
	ids := make([]int32, 0, len(s.markets))
	for _, code := range s.markets {
		m, ok := s.ref.MarketByCode(code)
		if !ok {
			slog.Warn("unknown market code in subscription", slog.String("code", code))
			continue
		}
		ids = append(ids, m.ID)
	}
	if len(ids) == 0 {
		return &domain.ConfigError{Field: "venue.markets", Err: errors.New("no known market codes to subscribe")}
	}

	req := map[string]interface{}{
		"kind":       "subscribe",
		"market_ids": ids,
	}
	b, _ := json.Marshal(req)
	return s.threadSafeWrite(websocket.TextMessage, b)
}

// RequestOrderBook asks the venue for a fresh depth snapshot. Fire-and-forget:
// the snapshot comes back on the regular inbound stream.
func (s *Session) RequestOrderBook(marketID int32) {
	req := map[string]interface{}{
		"kind":      "order_book_request",
		"market_id": marketID,
	}
	b, _ := json.Marshal(req)
	if err := s.threadSafeWrite(websocket.TextMessage, b); err != nil {
		slog.Warn("order book request failed", slog.Int("market_id", int(marketID)), slog.Any("error", err))
		return
	}
	infra.GlobalMetrics.RecordSnapshotRequest()
}

func (s *Session) threadSafeWrite(msgType int, data []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.conn == nil {
		return domain.NewNetworkError("write", errors.New("no connection"))
	}
	if err := s.conn.WriteMessage(msgType, data); err != nil {
		return domain.NewNetworkError("write", err)
	}
	return nil
}

func (s *Session) readLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		s.mu.RLock()
		if s.conn == nil {
			s.mu.RUnlock()
			return
		}
		s.conn.SetReadDeadline(time.Now().Add(readTimeout))
		s.mu.RUnlock()

		_, frame, err := s.conn.ReadMessage()
		if err != nil {
			s.closeConnection()
			return
		}
		s.handleFrame(frame)
	}
}

// handleFrame decodes one wire frame into a pooled inbound message and hands
// it to the processing loop. Frames that fail to decode are dropped with a
// warning; the stream carries on.
func (s *Session) handleFrame(frame []byte) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(frame, &head); err != nil {
		slog.Warn("undecodable frame", slog.Any("error", err))
		return
	}

	msg := message.Acquire()
	if err := json.Unmarshal(frame, msg); err != nil {
		slog.Warn("undecodable envelope", slog.String("kind", head.Kind), slog.Any("error", err))
		message.Release(msg)
		return
	}
	msg.Kind = message.ParseKind(head.Kind)

	select {
	case s.inbox <- msg:
	default:
		// Inbox full: shed the message rather than stall the socket.
		slog.Warn("inbox full, dropping message", slog.String("kind", head.Kind))
		message.Release(msg)
	}
}

func (s *Session) closeConnection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	if s.connected {
		infra.GlobalMetrics.DecrementConnections()
	}
	s.connected = false
}

// Disconnect stops the connection loop and closes the socket.
func (s *Session) Disconnect() {
	if s.cancel != nil {
		s.cancel()
	}
	s.closeConnection()
	s.wg.Wait()
}
