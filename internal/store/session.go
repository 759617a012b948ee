package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"reviewlens/internal/model"
)

// Session 브라우저 세션 하나의 상태
// 현재 화면, 업로드된 표, 마지막 분석 결과를 보관한다.
// 세션이 사라지면 함께 사라진다 (영속화하지 않음).
type Session struct {
	ID        string
	Screen    model.Screen
	Table     *model.RawTable
	Result    *model.AnalysisResult
	UpdatedAt time.Time
}

// SessionStore 세션별 상태 저장소 (메모리)
type SessionStore struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewSessionStore 세션 저장소 생성
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate 세션 조회, 없으면 새로 생성
// id가 비어 있거나 알 수 없는 값이면 새 세션을 만들어 반환한다.
func (s *SessionStore) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if session, ok := s.sessions[id]; ok {
			return session
		}
	}

	session := &Session{
		ID:        uuid.New().String(),
		Screen:    model.ScreenHome,
		UpdatedAt: time.Now(),
	}
	s.sessions[session.ID] = session
	return session
}

// SetScreen 화면 전환
func (s *SessionStore) SetScreen(id string, screen model.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Screen = screen
		session.UpdatedAt = time.Now()
	}
}

// SetTable 업로드된 표 저장
func (s *SessionStore) SetTable(id string, table *model.RawTable) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Table = table
		session.UpdatedAt = time.Now()
	}
}

// SetResult 분석 결과 저장 (통째로 덮어쓰기)
func (s *SessionStore) SetResult(id string, result model.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Result = &result
		session.UpdatedAt = time.Now()
	}
}

// Reset 세션을 초기 상태로 되돌린다
// 표와 결과를 버리고 메인 화면으로 돌아간다.
func (s *SessionStore) Reset(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Screen = model.ScreenHome
		session.Table = nil
		session.Result = nil
		session.UpdatedAt = time.Now()
	}
}

// Count 세션 수
func (s *SessionStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
