package model

import "fmt"

// Screen 화면 상태
type Screen string

const (
	ScreenHome      Screen = "home"      // 메인 화면 (서비스 소개)
	ScreenUpload    Screen = "upload"    // 업로드 화면
	ScreenDashboard Screen = "dashboard" // 대시보드 화면
)

// ParseScreen 문자열을 화면 상태로 변환
func ParseScreen(s string) (Screen, error) {
	switch Screen(s) {
	case ScreenHome, ScreenUpload, ScreenDashboard:
		return Screen(s), nil
	}
	return "", fmt.Errorf("unknown screen: %q", s)
}

// screenTransitions 허용된 화면 전환
// 대시보드 진입은 분석 완료를 통해서만 가능하다 (업로드 화면의 분석 실행).
var screenTransitions = map[Screen][]Screen{
	ScreenHome:      {ScreenUpload},
	ScreenUpload:    {ScreenHome, ScreenDashboard},
	ScreenDashboard: {ScreenHome, ScreenUpload},
}

// CanTransition 화면 전환 가능 여부
// 같은 화면으로의 전환(새로고침)은 항상 허용된다.
func CanTransition(from, to Screen) bool {
	if from == to {
		return true
	}
	for _, next := range screenTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
