package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens/internal/model"
)

// SessionResponse 세션 상태 응답
type SessionResponse struct {
	Screen    model.Screen `json:"screen"`    // 현재 화면
	HasTable  bool         `json:"hasTable"`  // 업로드된 데이터 존재 여부
	HasResult bool         `json:"hasResult"` // 분석 결과 존재 여부
	RowCount  int          `json:"rowCount"`  // 업로드된 데이터 행 수
}

// ScreenRequest 화면 전환 요청
type ScreenRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// GetSession 세션 상태 조회
// GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	session := h.session(c)

	c.JSON(http.StatusOK, SessionResponse{
		Screen:    session.Screen,
		HasTable:  session.Table != nil,
		HasResult: session.Result != nil,
		RowCount:  session.Table.RowCount(),
	})
}

// SetScreen 화면 전환
// POST /api/session/screen
// 상태 기계가 허용하지 않는 전환은 409로 거절한다.
func (h *Handler) SetScreen(c *gin.Context) {
	var req ScreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청 형식입니다"})
		return
	}

	screen, err := model.ParseScreen(req.Screen)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 화면입니다"})
		return
	}

	session := h.session(c)
	if !model.CanTransition(session.Screen, screen) {
		c.JSON(http.StatusConflict, gin.H{"error": "허용되지 않는 화면 전환입니다"})
		return
	}

	h.store.SetScreen(session.ID, screen)
	c.JSON(http.StatusOK, gin.H{"screen": screen})
}

// ResetSession 세션 초기화 (새 분석 준비)
// POST /api/session/reset
func (h *Handler) ResetSession(c *gin.Context) {
	session := h.session(c)
	h.store.Reset(session.ID)
	c.JSON(http.StatusOK, gin.H{"screen": model.ScreenHome})
}
