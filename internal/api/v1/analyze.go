package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens/internal/extract"
	"reviewlens/internal/model"
)

// Analyze 업로드된 데이터에 대해 AI 분석 실행
// POST /api/analyze
// 외부 호출이 실패해도 5xx를 내지 않는다: 분석기가 0값 결과로 흡수한다.
func (h *Handler) Analyze(c *gin.Context) {
	session := h.session(c)

	if session.Table == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드된 데이터가 없습니다. 먼저 파일을 업로드해주세요."})
		return
	}

	reviews := extract.ReviewTexts(session.Table, h.policy)
	result := h.analyzer.Analyze(c.Request.Context(), reviews)

	h.store.SetResult(session.ID, result)
	h.store.SetScreen(session.ID, model.ScreenDashboard)

	c.JSON(http.StatusOK, result)
}

// GetResult 마지막 분석 결과 조회
// GET /api/result
// 분석 전 대시보드 접근은 404와 안내 문구로 끝난다.
func (h *Handler) GetResult(c *gin.Context) {
	session := h.session(c)

	if session.Result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "분석 결과가 없습니다. 먼저 리뷰 분석을 실행해주세요."})
		return
	}

	c.JSON(http.StatusOK, session.Result)
}
