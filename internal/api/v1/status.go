package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 시스템 상태 응답
type StatusResponse struct {
	Service          string `json:"service"`          // 서비스 이름
	Model            string `json:"model"`            // 사용 중인 분석 모델
	APIKeyConfigured bool   `json:"apiKeyConfigured"` // API 키 설정 여부
	Sessions         int    `json:"sessions"`         // 활성 세션 수
}

// GetStatus 시스템 상태 조회
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Service:          "reviewlens",
		Model:            h.modelName,
		APIKeyConfigured: h.hasAPIKey,
		Sessions:         h.store.Count(),
	})
}
