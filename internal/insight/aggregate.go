package insight

import "reviewlens/internal/model"

// CountSentiments 감성 레이블 개수 집계
// 닫힌 집합 {positive, neutral, negative} 외의 레이블은 어느 쪽도 올리지 않는다.
// 따라서 positive+neutral+negative는 항상 레이블 수 이하다.
func CountSentiments(labels []string) (positive, neutral, negative int) {
	for _, label := range labels {
		switch label {
		case model.SentimentPositive:
			positive++
		case model.SentimentNeutral:
			neutral++
		case model.SentimentNegative:
			negative++
		}
	}
	return positive, neutral, negative
}
