package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"reviewlens/internal/extract"
	"reviewlens/internal/model"
	"reviewlens/internal/store"
)

// sessionCookie 세션 식별 쿠키 이름
const sessionCookie = "reviewlens_session"

// ReviewAnalyzer 리뷰 분석기 인터페이스
// 실패를 오류로 반환하지 않고 항상 결과를 돌려준다.
type ReviewAnalyzer interface {
	Analyze(ctx context.Context, reviews []string) model.AnalysisResult
}

// Handler V1 API 처리기
type Handler struct {
	store       *store.SessionStore
	analyzer    ReviewAnalyzer
	policy      extract.Policy
	previewRows int
	modelName   string
	hasAPIKey   bool
}

// NewHandler V1 API 처리기 생성
func NewHandler(sessions *store.SessionStore, analyzer ReviewAnalyzer, policy extract.Policy, previewRows int, modelName string, hasAPIKey bool) *Handler {
	if previewRows <= 0 {
		previewRows = 10
	}
	return &Handler{
		store:       sessions,
		analyzer:    analyzer,
		policy:      policy,
		previewRows: previewRows,
		modelName:   modelName,
		hasAPIKey:   hasAPIKey,
	}
}

// RegisterRoutes V1 API 라우트 등록
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 시스템 상태
	router.GET("/status", h.GetStatus)

	// 세션 상태 (화면 전환 상태 기계)
	router.GET("/session", h.GetSession)
	router.POST("/session/screen", h.SetScreen)
	router.POST("/session/reset", h.ResetSession)

	// 데이터 업로드
	router.POST("/upload", h.Upload)

	// 분석 실행 / 결과 조회
	router.POST("/analyze", h.Analyze)
	router.GET("/result", h.GetResult)
}

// session 요청의 세션을 찾거나 새로 만든다
// 새 세션이 만들어지면 쿠키를 내려보낸다.
func (h *Handler) session(c *gin.Context) *store.Session {
	id, _ := c.Cookie(sessionCookie)
	session := h.store.GetOrCreate(id)
	if session.ID != id {
		c.SetCookie(sessionCookie, session.ID, 0, "/", "", false, true)
	}
	return session
}
