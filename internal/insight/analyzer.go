package insight

import (
	"context"
	"math"
	"time"

	"reviewlens/internal/model"
)

// Options 분석기 설정
type Options struct {
	MaxReviews int           // 한 번에 전송하는 최대 리뷰 수
	Timeout    time.Duration // 외부 호출 제한 시간
}

// DefaultOptions 기본 분석기 설정
func DefaultOptions() Options {
	return Options{
		MaxReviews: 50,
		Timeout:    60 * time.Second,
	}
}

// Analyzer 리뷰 감성/인사이트 분석기
type Analyzer struct {
	completer ChatCompleter
	opts      Options
}

// NewAnalyzer 분석기 생성
func NewAnalyzer(completer ChatCompleter, opts Options) *Analyzer {
	if opts.MaxReviews <= 0 {
		opts.MaxReviews = DefaultOptions().MaxReviews
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}
	return &Analyzer{completer: completer, opts: opts}
}

// Analyze 리뷰 목록을 분석해 결과를 반환
// 오류를 반환하지 않는다: 호출/해석 과정의 모든 실패는
// 리뷰 개수만 보존한 0값 결과로 흡수된다. 재시도는 하지 않는다.
func (a *Analyzer) Analyze(ctx context.Context, reviews []string) model.AnalysisResult {
	if len(reviews) == 0 {
		return model.FallbackResult(0)
	}

	// 최대 개수 초과분은 잘라낸다 (앞에서부터 유지)
	sent := reviews
	if len(sent) > a.opts.MaxReviews {
		sent = sent[:a.opts.MaxReviews]
	}

	ctx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()

	raw, err := a.completer.Complete(ctx, systemPrompt, buildPrompt(sent))
	if err != nil {
		return model.FallbackResult(len(sent))
	}

	reply, err := parseReply(raw)
	if err != nil {
		return model.FallbackResult(len(sent))
	}

	// 모델이 레이블을 과잉 생산하는 경우 방어
	labels := reply.Sentiments
	if len(labels) > len(sent) {
		labels = labels[:len(sent)]
	}
	positive, neutral, negative := CountSentiments(labels)

	result := model.AnalysisResult{
		Total:    len(sent),
		Positive: positive,
		Neutral:  neutral,
		Negative: negative,
		Keywords: []string{},
	}
	if reply.Score != nil {
		result.Score = math.Round(*reply.Score*10) / 10
	}
	if reply.Keywords != nil {
		result.Keywords = reply.Keywords
	}
	if reply.Summary != nil {
		result.Summary = *reply.Summary
	}
	return result
}
