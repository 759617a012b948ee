package model

import "testing"

// TestParseScreen 화면 이름 해석
func TestParseScreen(t *testing.T) {
	for _, name := range []string{"home", "upload", "dashboard"} {
		screen, err := ParseScreen(name)
		if err != nil {
			t.Errorf("ParseScreen(%q) failed: %v", name, err)
		}
		if string(screen) != name {
			t.Errorf("ParseScreen(%q) = %q", name, screen)
		}
	}

	if _, err := ParseScreen("settings"); err == nil {
		t.Error("알 수 없는 화면 이름이 허용됨")
	}
	if _, err := ParseScreen(""); err == nil {
		t.Error("빈 화면 이름이 허용됨")
	}
}

// TestCanTransition 화면 전환 규칙
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Screen
		want     bool
	}{
		{ScreenHome, ScreenUpload, true},
		{ScreenHome, ScreenDashboard, false}, // 분석 없이 대시보드 직행 불가
		{ScreenUpload, ScreenDashboard, true},
		{ScreenUpload, ScreenHome, true},
		{ScreenDashboard, ScreenUpload, true}, // 새 분석
		{ScreenDashboard, ScreenHome, true},
		{ScreenHome, ScreenHome, true}, // 새로고침
		{ScreenDashboard, ScreenDashboard, true},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
