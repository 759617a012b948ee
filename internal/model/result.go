package model

// 감성 레이블 (닫힌 집합)
// 모델 응답에서 이 세 값 이외의 레이블은 집계에서 무시된다.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// AnalysisResult 리뷰 분석 결과
// 한 번의 분석 호출마다 하나 생성되며, 세션에 통째로 덮어써진다.
type AnalysisResult struct {
	Total    int      `json:"total"`    // 실제 전송한 리뷰 수
	Positive int      `json:"positive"` // 긍정 리뷰 수
	Neutral  int      `json:"neutral"`  // 중립 리뷰 수
	Negative int      `json:"negative"` // 부정 리뷰 수
	Score    float64  `json:"score"`    // 종합 만족도 (0.0~10.0, 소수점 1자리)
	Keywords []string `json:"keywords"` // 핵심 키워드 (원문 언어 유지)
	Summary  string   `json:"summary"`  // 한국어 요약 문장
}

// FallbackResult 외부 호출 실패 시 반환하는 0값 결과
// 리뷰 개수는 보존하고 파생 인사이트는 모두 비운다.
func FallbackResult(total int) AnalysisResult {
	return AnalysisResult{
		Total:    total,
		Keywords: []string{},
		Summary:  "",
	}
}
