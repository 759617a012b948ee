package insight

import (
	"fmt"
	"strings"
)

// systemPrompt 시스템 메시지
// 입력 언어와 무관하게 분석 결과는 한국어로 고정한다.
const systemPrompt = "너는 다국어 설문 데이터를 분석하는 전문가다. " +
	"입력 언어와 관계없이 분석 결과는 반드시 한국어로 제공해야 한다."

// buildPrompt 리뷰 목록을 포함한 사용자 지시문 생성
// 감성 레이블은 닫힌 집합으로 강제하고, 개수 집계는 모델에 맡기지 않는다.
func buildPrompt(reviews []string) string {
	return fmt.Sprintf(`아래는 고객 설문 및 리뷰 응답 목록입니다.
응답은 한국어, 영어 또는 혼합 언어일 수 있습니다.

리뷰 목록:
%s

각 리뷰에 대해 감성을 판단하세요.

규칙:
- 각 리뷰마다 하나의 감성만 선택
- 선택지는 반드시 아래 중 하나:
  - positive
  - neutral
  - negative
- 개수나 통계는 계산하지 말 것
- 모든 설명과 요약은 한국어로 작성
- 키워드는 원문 언어를 유지

반드시 아래 JSON 형식으로만 답변하세요.

{
  "sentiments": ["positive", "neutral", "negative", ...],
  "score": 전체 만족도를 0~10점 사이 숫자로 평가 (소수점 1자리),
  "keywords": ["핵심 키워드 5개"],
  "summary": "전체 리뷰를 한 문단으로 요약한 한국어 문장"
}`, strings.Join(reviews, "\n"))
}
