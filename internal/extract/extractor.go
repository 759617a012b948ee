package extract

import (
	"strings"
	"unicode/utf8"

	"reviewlens/internal/model"
)

// Policy 셀 필터링 정책
// 어떤 셀을 리뷰 텍스트로 인정할지 결정하는 기준값을 명시적으로 보관한다.
type Policy struct {
	MinTextLength int    // 이 길이(문자 수) 미만의 텍스트는 노이즈로 제외
	Separator     string // 한 행의 텍스트를 합칠 때 사용하는 구분자
}

// DefaultPolicy 기본 필터링 정책
func DefaultPolicy() Policy {
	return Policy{
		MinTextLength: 5,
		Separator:     " / ",
	}
}

// IsNumericLike 숫자로만 이루어진 값인지 판단
// "."을 제거한 뒤 전부 숫자면 만족도 점수 등의 수치로 간주한다.
func IsNumericLike(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// KeepCell 셀 하나가 리뷰 텍스트로 살아남는지 판단
func (p Policy) KeepCell(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if IsNumericLike(value) {
		return "", false
	}
	if utf8.RuneCountInString(value) < p.MinTextLength {
		return "", false
	}
	return value, true
}

// ReviewTexts 표에서 행 단위 리뷰 텍스트를 추출
// 응답자 1명(행 1개) = 리뷰 1개 기준. 살아남은 셀이 없는 행은 조용히 버려지므로
// 결과 길이는 항상 행 수 이하이고, 순서는 행 순서를 따른다.
func ReviewTexts(t *model.RawTable, p Policy) []string {
	if t == nil {
		return nil
	}

	reviews := make([]string, 0, len(t.Rows))

	for _, row := range t.Rows {
		texts := make([]string, 0, len(row))
		for _, value := range row {
			if text, ok := p.KeepCell(value); ok {
				texts = append(texts, text)
			}
		}
		if len(texts) > 0 {
			reviews = append(reviews, strings.Join(texts, p.Separator))
		}
	}

	return reviews
}
