package server

import (
	"errors"
	"sort"
	"sync"

	"slingshot-server/pkg/util"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionManager struct {
	sessions    map[string]*GameSession
	sessionLock sync.Mutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*GameSession),
	}
}

// AddSession registers the session. A session whose code is already taken
// gets a fresh one, so codes stay unique among live sessions.
func (m *SessionManager) AddSession(session *GameSession) {
	m.sessionLock.Lock()
	defer m.sessionLock.Unlock()

	for m.codeInUseLocked(session.SessionCode) {
		session.SessionCode = util.GenerateSessionCode()
	}
	m.sessions[session.ID] = session
}

func (m *SessionManager) codeInUseLocked(code string) bool {
	for _, session := range m.sessions {
		if session.SessionCode == code {
			return true
		}
	}
	return false
}

// RemoveSession removes and returns the session, if present
func (m *SessionManager) RemoveSession(sessionID string) (*GameSession, bool) {
	m.sessionLock.Lock()
	defer m.sessionLock.Unlock()
	session, exists := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	return session, exists
}

func (m *SessionManager) GetSession(sessionID string) (*GameSession, bool) {
	m.sessionLock.Lock()
	session, exists := m.sessions[sessionID]
	m.sessionLock.Unlock()
	return session, exists
}

func (m *SessionManager) GetSessionByCode(code string) (*GameSession, bool) {
	m.sessionLock.Lock()
	defer m.sessionLock.Unlock()

	code = util.NormalizeSessionCode(code)
	for _, session := range m.sessions {
		if session.SessionCode == code {
			return session, true
		}
	}
	return nil, false
}

// GetSessions returns all sessions ordered by ID
func (m *SessionManager) GetSessions() []*GameSession {
	m.sessionLock.Lock()
	defer m.sessionLock.Unlock()

	sessions := make([]*GameSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].ID < sessions[j].ID })
	return sessions
}

func (m *SessionManager) GetSessionIDs() []string {
	m.sessionLock.Lock()
	defer m.sessionLock.Unlock()

	var ids []string
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

func (m *SessionManager) Count() int {
	m.sessionLock.Lock()
	defer m.sessionLock.Unlock()
	return len(m.sessions)
}
