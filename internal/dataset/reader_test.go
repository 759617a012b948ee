package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
)

// TestReadCSVUTF8 UTF-8 CSV 읽기
func TestReadCSVUTF8(t *testing.T) {
	csvData := "점수,리뷰\n5,배송이 빨라서 좋았어요\n3,보통이에요\n"

	table, err := Read("survey.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(table.Columns) != 2 {
		t.Fatalf("Columns = %d, want 2", len(table.Columns))
	}
	if table.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", table.RowCount())
	}
	if table.Rows[0][1] != "배송이 빨라서 좋았어요" {
		t.Errorf("Rows[0][1] = %q", table.Rows[0][1])
	}
}

// TestReadCSVWithBOM BOM이 붙은 UTF-8 CSV 읽기
func TestReadCSVWithBOM(t *testing.T) {
	csvData := "\xEF\xBB\xBF점수,리뷰\n5,만족합니다 재구매 의사 있어요\n"

	table, err := Read("survey.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if table.Columns[0] != "점수" {
		t.Errorf("Columns[0] = %q, BOM이 제거되지 않음", table.Columns[0])
	}
}

// TestReadCSVCP949 CP949로 인코딩된 CSV는 재디코딩 후 읽혀야 한다
func TestReadCSVCP949(t *testing.T) {
	utf8Data := "점수,리뷰\n4,포장이 꼼꼼했습니다\n"

	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(utf8Data))
	if err != nil {
		t.Fatalf("EUC-KR encode failed: %v", err)
	}

	table, err := Read("survey.csv", bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if table.Rows[0][1] != "포장이 꼼꼼했습니다" {
		t.Errorf("Rows[0][1] = %q, want 포장이 꼼꼼했습니다", table.Rows[0][1])
	}
}

// TestReadXLSX 엑셀 파일 읽기
func TestReadXLSX(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)

	header := []interface{}{"점수", "리뷰"}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}
	row2 := []interface{}{"5", "전체적으로 만족스러운 제품입니다"}
	if err := wb.SetSheetRow(sheet, "A2", &row2); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	table, err := Read("survey.xlsx", buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if table.RowCount() != 1 {
		t.Fatalf("RowCount = %d, want 1", table.RowCount())
	}
	if table.Rows[0][1] != "전체적으로 만족스러운 제품입니다" {
		t.Errorf("Rows[0][1] = %q", table.Rows[0][1])
	}
}

// TestReadUnsupportedExtension 지원하지 않는 확장자는 오류
func TestReadUnsupportedExtension(t *testing.T) {
	if _, err := Read("survey.txt", strings.NewReader("무의미한 내용")); err == nil {
		t.Fatal("지원하지 않는 확장자는 오류를 반환해야 함")
	}
}

// TestReadEmptyCSV 빈 파일은 오류
func TestReadEmptyCSV(t *testing.T) {
	if _, err := Read("survey.csv", strings.NewReader("")); err == nil {
		t.Fatal("빈 CSV는 오류를 반환해야 함")
	}
}
