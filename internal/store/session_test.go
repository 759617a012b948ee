package store

import (
	"testing"

	"reviewlens/internal/model"
)

// TestGetOrCreateNewSession 새 세션 생성
func TestGetOrCreateNewSession(t *testing.T) {
	s := NewSessionStore()

	session := s.GetOrCreate("")
	if session.ID == "" {
		t.Fatal("세션 ID가 비어 있음")
	}
	if session.Screen != model.ScreenHome {
		t.Errorf("초기 화면 = %s, want home", session.Screen)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

// TestGetOrCreateExisting 기존 세션 재사용
func TestGetOrCreateExisting(t *testing.T) {
	s := NewSessionStore()

	first := s.GetOrCreate("")
	second := s.GetOrCreate(first.ID)

	if first.ID != second.ID {
		t.Fatalf("같은 ID로 다른 세션 반환: %s vs %s", first.ID, second.ID)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

// TestGetOrCreateUnknownID 알 수 없는 ID는 새 세션
func TestGetOrCreateUnknownID(t *testing.T) {
	s := NewSessionStore()

	session := s.GetOrCreate("does-not-exist")
	if session.ID == "does-not-exist" {
		t.Fatal("알 수 없는 ID가 그대로 재사용됨")
	}
}

// TestSetResultOverwrite 결과는 통째로 덮어써진다
func TestSetResultOverwrite(t *testing.T) {
	s := NewSessionStore()
	session := s.GetOrCreate("")

	s.SetResult(session.ID, model.AnalysisResult{Total: 10, Positive: 7})
	s.SetResult(session.ID, model.AnalysisResult{Total: 3, Negative: 3})

	got := s.GetOrCreate(session.ID).Result
	if got == nil {
		t.Fatal("Result가 nil")
	}
	if got.Total != 3 || got.Positive != 0 || got.Negative != 3 {
		t.Fatalf("Result = %+v, 이전 결과가 남아 있음", got)
	}
}

// TestReset 세션 초기화
func TestReset(t *testing.T) {
	s := NewSessionStore()
	session := s.GetOrCreate("")

	s.SetTable(session.ID, &model.RawTable{Rows: [][]string{{"좋은 리뷰입니다"}}})
	s.SetResult(session.ID, model.AnalysisResult{Total: 1})
	s.SetScreen(session.ID, model.ScreenDashboard)

	s.Reset(session.ID)

	got := s.GetOrCreate(session.ID)
	if got.Screen != model.ScreenHome {
		t.Errorf("Screen = %s, want home", got.Screen)
	}
	if got.Table != nil || got.Result != nil {
		t.Error("Reset 후에도 표/결과가 남아 있음")
	}
}
