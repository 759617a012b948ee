package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewlens/internal/dataset"
	"reviewlens/internal/extract"
	"reviewlens/internal/model"
)

// UploadResponse 업로드 응답
type UploadResponse struct {
	Columns     []string   `json:"columns"`     // 컬럼명
	RowCount    int        `json:"rowCount"`    // 데이터 행 수
	Preview     [][]string `json:"preview"`     // 미리보기 행
	ReviewCount int        `json:"reviewCount"` // 추출 가능한 리뷰 수
}

// Upload 리뷰 데이터 업로드
// POST /api/upload
// csv(UTF-8/CP949) 또는 xlsx 파일을 받아 세션에 보관하고 미리보기를 반환한다.
// 파일 읽기 오류는 분석을 시도하지 않고 400으로 끝난다.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드된 파일이 없습니다"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일을 여는 중 오류가 발생했습니다"})
		return
	}
	defer file.Close()

	table, err := dataset.Read(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일을 읽는 중 오류가 발생했습니다. csv 또는 xlsx 파일인지 확인해주세요."})
		return
	}

	session := h.session(c)
	h.store.SetTable(session.ID, table)
	h.store.SetScreen(session.ID, model.ScreenUpload)

	preview := table.Rows
	if len(preview) > h.previewRows {
		preview = preview[:h.previewRows]
	}

	c.JSON(http.StatusOK, UploadResponse{
		Columns:     table.Columns,
		RowCount:    table.RowCount(),
		Preview:     preview,
		ReviewCount: len(extract.ReviewTexts(table, h.policy)),
	})
}
