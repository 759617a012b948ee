package model

import "testing"

// TestFallbackResult 0값 결과는 리뷰 수만 보존한다
func TestFallbackResult(t *testing.T) {
	result := FallbackResult(37)

	if result.Total != 37 {
		t.Errorf("Total = %d, want 37", result.Total)
	}
	if result.Positive != 0 || result.Neutral != 0 || result.Negative != 0 {
		t.Errorf("counts = %d/%d/%d, want 0/0/0", result.Positive, result.Neutral, result.Negative)
	}
	if result.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", result.Score)
	}
	if result.Keywords == nil || len(result.Keywords) != 0 {
		// JSON 직렬화 시 null이 아닌 []로 나가야 한다
		t.Errorf("Keywords = %#v, want 빈 슬라이스", result.Keywords)
	}
	if result.Summary != "" {
		t.Errorf("Summary = %q, want 빈 문자열", result.Summary)
	}
}
