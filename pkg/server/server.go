package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"slingshot-server/pkg/scores"
	"slingshot-server/pkg/server/game_objects"
	"slingshot-server/pkg/server/simulation"
	"slingshot-server/pkg/server/types"
	"slingshot-server/pkg/util"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time to keep idle sessions before cleanup
	SESSION_CLEANUP_INTERVAL = 1 * time.Minute
	SESSION_INACTIVE_TIMEOUT = 10 * time.Minute
	GAME_UPDATE_QUEUE_SIZE   = 256
	HIGH_SCORE_FETCH_TIMEOUT = 5 * time.Second

	connectionSendBuffer = 64
	maxMessageSize       = 4096
	writeWait            = 10 * time.Second
	pongWait             = 60 * time.Second
	pingPeriod           = 25 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameUpdateQueueItem is a frame waiting to be sent to a session's connection
type GameUpdateQueueItem struct {
	SessionID string
	Update    *types.GameUpdate
}

// ServerOptions configures a Server. Zero values fall back to defaults.
type ServerOptions struct {
	Store            scores.Store
	SimulationConfig *simulation.Config
	TickConfig       *TickConfig
	SyncQueueSize    int
	CleanupInterval  time.Duration
	InactiveTimeout  time.Duration
}

// Server handles WebSocket connections and game sessions
type Server struct {
	// Message queue for session updates
	gameStateUpdateQueue chan GameUpdateQueueItem

	// Map of sessionID -> connection
	connectionsBySession map[string]*Connection

	// Mutex for server-wide operations
	serverLock sync.Mutex

	// Track game sessions
	sessionManager *SessionManager

	scoreStore scores.Store
	syncer     *scores.Syncer

	simulationConfig simulation.Config
	tickConfig       *TickConfig
	cleanupInterval  time.Duration
	inactiveTimeout  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewServer creates a new game server and starts its workers
func NewServer(opts ServerOptions) (*Server, error) {
	if _, _, err := calculateTickInterval(opts.TickConfig); err != nil {
		return nil, fmt.Errorf("invalid tick configuration: %w", err)
	}

	store := opts.Store
	if store == nil {
		store = scores.NewMemoryStore()
	}
	simulationConfig := simulation.DefaultConfig()
	if opts.SimulationConfig != nil {
		simulationConfig = *opts.SimulationConfig
	}
	cleanupInterval := opts.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = SESSION_CLEANUP_INTERVAL
	}
	inactiveTimeout := opts.InactiveTimeout
	if inactiveTimeout <= 0 {
		inactiveTimeout = SESSION_INACTIVE_TIMEOUT
	}

	ctx, cancel := context.WithCancel(context.Background())
	server := &Server{
		gameStateUpdateQueue: make(chan GameUpdateQueueItem, GAME_UPDATE_QUEUE_SIZE),
		connectionsBySession: make(map[string]*Connection),
		sessionManager:       NewSessionManager(),
		scoreStore:           store,
		syncer:               scores.NewSyncer(store, opts.SyncQueueSize),
		simulationConfig:     simulationConfig,
		tickConfig:           opts.TickConfig,
		cleanupInterval:      cleanupInterval,
		inactiveTimeout:      inactiveTimeout,
		ctx:                  ctx,
		cancel:               cancel,
	}

	// Start the update worker
	server.wg.Add(1)
	go server.runProcessGameUpdateQueue()

	// Start the inactive session cleanup worker
	server.wg.Add(1)
	go server.runCleanupInactiveSessions()

	return server, nil
}

// Close ends every session, stops the workers and the score syncer
func (s *Server) Close() {
	s.cancel()
	for _, id := range s.sessionManager.GetSessionIDs() {
		if _, conn, ended := s.endSession(id); ended && conn != nil {
			conn.close()
		}
	}
	s.wg.Wait()
	s.syncer.Close()
}

// HandleWebSocket upgrades the request and starts a new session on it
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Upgrade HTTP connection to WebSocket
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading connection: %v", err)
		return
	}

	conn := newConnection(uuid.New().String(), ws)
	go conn.writePump()

	if err := s.startSession(conn); err != nil {
		log.Printf("HandleWebSocket: failed to start session for connection %s: %v", conn.ID, err)
		conn.close()
		return
	}

	// Handle connection
	go s.handleConnection(conn)
}

// startSession creates the connection's session, greets the client and
// starts ticking
func (s *Server) startSession(conn *Connection) error {
	session, err := NewGameSessionWithTickConfig(s.simulationConfig, s.tickConfig)
	if err != nil {
		return err
	}

	// Updates are dropped until the connection is registered, and Welcome
	// is queued under the same lock, so it is always the first frame.
	// AddSession settles the session code.
	session.StartTickLoop(s.onSessionUpdate)
	s.sessionManager.AddSession(session)
	welcome := types.Message{
		Type: types.MessageWelcome,
		Payload: util.Must(json.Marshal(types.Welcome{
			SessionID:   session.ID,
			SessionCode: session.SessionCode,
			CanvasSizeX: session.Config.Width,
			CanvasSizeY: session.Config.Height,
		})),
	}

	s.serverLock.Lock()
	conn.enqueue(welcome)
	s.connectionsBySession[session.ID] = conn
	s.serverLock.Unlock()
	conn.SessionID = session.ID

	// Close may have swept the sessions before this one was registered
	if s.ctx.Err() != nil {
		s.sessionManager.RemoveSession(session.ID)
		session.StopTickLoop()
		s.serverLock.Lock()
		delete(s.connectionsBySession, session.ID)
		s.serverLock.Unlock()
		return fmt.Errorf("server is shutting down")
	}

	go s.sendInitialHighScore(session.ID)

	log.Printf("Started game session %s (%s) for connection %s", session.ID, session.SessionCode, conn.ID)
	return nil
}

// endSession removes the session and stops its tick loop. Only the caller
// that actually removed the session gets ended == true.
func (s *Server) endSession(sessionID string) (*GameSession, *Connection, bool) {
	session, exists := s.sessionManager.RemoveSession(sessionID)
	if !exists {
		return nil, nil, false
	}
	session.StopTickLoop()

	s.serverLock.Lock()
	conn := s.connectionsBySession[sessionID]
	delete(s.connectionsBySession, sessionID)
	s.serverLock.Unlock()

	return session, conn, true
}

// handleConnection processes messages from a WebSocket connection
func (s *Server) handleConnection(conn *Connection) {
	defer func() {
		// Handle unexpected disconnection
		s.handleDisconnect(conn)
	}()

	conn.connection.SetReadLimit(maxMessageSize)
	conn.connection.SetReadDeadline(time.Now().Add(pongWait))
	conn.connection.SetPongHandler(func(string) error {
		return conn.connection.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		// Read message from WebSocket
		var msg types.Message
		err := conn.connection.ReadJSON(&msg)
		if err != nil {
			// Check if this is a normal closure
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Connection %s closed normally", conn.ID)
			} else {
				log.Printf("Error reading message: %v", err)
			}
			break
		}
		conn.connection.SetReadDeadline(time.Now().Add(pongWait))

		// Process message based on type
		switch msg.Type {
		case types.MessagePointerDown:
			x, y := decodePointer(msg)
			s.handlePointerInput(conn, simulation.PointerDown(x, y))

		case types.MessagePointerMove:
			x, y := decodePointer(msg)
			s.handlePointerInput(conn, simulation.PointerMove(x, y))

		case types.MessagePointerUp:
			s.handlePointerInput(conn, simulation.PointerUp())

		case types.MessageResetGame:
			s.handleResetGame(conn)

		case types.MessageExitGame:
			var req types.ExitGameRequest
			if len(msg.Payload) > 0 {
				if err := json.Unmarshal(msg.Payload, &req); err != nil {
					log.Printf("Error unmarshalling ExitGame payload: %v", err)
					continue
				}
			}
			s.handleExitGame(conn, req)

		default:
			log.Printf("Unknown message type: %s", msg.Type)
		}
	}
}

// decodePointer reads a pointer payload. Anything unreadable is treated as
// the origin rather than rejected.
func decodePointer(msg types.Message) (float64, float64) {
	var req types.PointerRequest
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			log.Printf("Error unmarshalling %s payload: %v", msg.Type, err)
			return 0, 0
		}
	}
	return req.Coordinates()
}

// handleDisconnect handles unexpected disconnections
func (s *Server) handleDisconnect(conn *Connection) {
	conn.close()
	if conn.SessionID == "" {
		return
	}

	log.Printf("Handling disconnect for connection %s from session %s", conn.ID, conn.SessionID)
	s.endSession(conn.SessionID)
}

// onSessionUpdate queues the frame for the session's connection. It runs
// under the session lock, on the tick goroutine or the connection's reader,
// so frames enter the queue in the order the session produced them.
func (s *Server) onSessionUpdate(session *GameSession, update *SessionUpdate) {
	item := GameUpdateQueueItem{
		SessionID: session.ID,
		Update: &types.GameUpdate{
			Snapshot: update.Snapshot,
			Events:   update.Events,
		},
	}
	select {
	case s.gameStateUpdateQueue <- item:
	case <-s.ctx.Done():
	}
}

// runProcessGameUpdateQueue processes the game update queue in order
func (s *Server) runProcessGameUpdateQueue() {
	defer s.wg.Done()
	for {
		select {
		case <-s.ctx.Done():
			return
		case update := <-s.gameStateUpdateQueue:
			s.sendGameUpdate(update)
		}
	}
}

// sendGameUpdate hands the game state update to the session's connection,
// then submits its score changes. A HighScore reply can only follow the
// GameState frame that carried the score change.
func (s *Server) sendGameUpdate(update GameUpdateQueueItem) {
	if conn, exists := s.getConnection(update.SessionID); exists {
		if update.Update.Events == nil {
			update.Update.Events = []*game_objects.GameEvent{}
		}
		payload, err := json.Marshal(update.Update)
		if err != nil {
			log.Printf("sendGameUpdate: Error marshalling GameState: %v", err)
		} else if !conn.enqueue(types.Message{Type: types.MessageGameState, Payload: payload}) {
			log.Printf("sendGameUpdate: dropped GameState for session %s", update.SessionID)
		}
	}

	s.submitScores(update.SessionID, update.Update.Events)
}

// submitScores forwards score changes to the syncer. Scores are stored even
// when the session's connection is gone.
func (s *Server) submitScores(sessionID string, events []*game_objects.GameEvent) {
	for _, event := range events {
		if event.EventType != game_objects.EventScoreChanged {
			continue
		}
		s.syncer.Submit(int64(event.Score), func(highScore int64) {
			s.sendHighScore(sessionID, highScore)
		})
	}
}

func (s *Server) sendHighScore(sessionID string, highScore int64) {
	conn, exists := s.getConnection(sessionID)
	if !exists {
		return
	}
	conn.enqueue(types.Message{
		Type:    types.MessageHighScore,
		Payload: util.Must(json.Marshal(types.HighScoreUpdate{HighScore: highScore})),
	})
}

// sendInitialHighScore reads the stored high score once for a new session
func (s *Server) sendInitialHighScore(sessionID string) {
	ctx, cancel := context.WithTimeout(s.ctx, HIGH_SCORE_FETCH_TIMEOUT)
	defer cancel()

	highScore, err := s.scoreStore.GetHighScore(ctx)
	if err != nil {
		log.Printf("sendInitialHighScore: error loading high score for session %s: %v", sessionID, err)
		return
	}
	s.sendHighScore(sessionID, highScore)
}

func (s *Server) getConnection(sessionID string) (*Connection, bool) {
	s.serverLock.Lock()
	defer s.serverLock.Unlock()
	conn, exists := s.connectionsBySession[sessionID]
	return conn, exists
}

// runCleanupInactiveSessions ensures that idle sessions are cleaned up
func (s *Server) runCleanupInactiveSessions() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case now := <-ticker.C:
			s.cleanupInactiveSessions(now)
		}
	}
}

// cleanupInactiveSessions ends sessions with no input for the inactive
// timeout and closes their connections
func (s *Server) cleanupInactiveSessions(now time.Time) {
	for _, session := range s.sessionManager.GetSessions() {
		if session.IdleFor(now) <= s.inactiveTimeout {
			continue
		}
		_, conn, ended := s.endSession(session.ID)
		if !ended {
			continue
		}
		if conn != nil {
			conn.close()
		}
		log.Printf("Removed inactive game session: %s", session.ID)
	}
}
