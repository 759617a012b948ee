package insight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// modelReply 모델이 반환해야 하는 JSON 형태
// 필드 누락/null에 대비해 포인터와 기본값 처리를 거친다.
type modelReply struct {
	Sentiments []string `json:"sentiments"`
	Score      *float64 `json:"score"`
	Keywords   []string `json:"keywords"`
	Summary    *string  `json:"summary"`
}

// parseReply 모델 응답 텍스트에서 JSON 객체를 찾아 해석
// 모델이 JSON 앞뒤에 설명을 붙이는 경우가 있어, 전체 해석에 실패하면
// 첫 '{'부터 마지막 '}'까지의 구간을 다시 시도한다.
func parseReply(raw string) (*modelReply, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, errors.New("empty model output")
	}

	var reply modelReply
	if err := json.Unmarshal([]byte(s), &reply); err == nil {
		return &reply, nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	if err := json.Unmarshal([]byte(s[start:end+1]), &reply); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extracted JSON: %w", err)
	}
	return &reply, nil
}
