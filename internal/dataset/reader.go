package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"

	"reviewlens/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read 업로드 파일을 RawTable로 읽어들인다
// 확장자 기준으로 .csv / .xlsx 만 지원하며, 첫 행을 컬럼명으로 사용한다.
func Read(filename string, r io.Reader) (*model.RawTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readXLSX(r)
	}
	return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
}

// readCSV CSV 파일 읽기
// UTF-8로 먼저 시도하고, 유효하지 않으면 CP949(EUC-KR)로 재디코딩한다.
// 한국어 설문 데이터는 엑셀에서 CP949로 저장된 경우가 많다.
func readCSV(r io.Reader) (*model.RawTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		decoded, err := korean.EUCKR.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode cp949: %w", err)
		}
		data = decoded
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // 행마다 컬럼 수가 다른 파일 허용

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	return tableFromRecords(records)
}

// readXLSX 엑셀 파일 읽기 (첫 번째 시트)
func readXLSX(r io.Reader) (*model.RawTable, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("no sheets in workbook")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return tableFromRecords(rows)
}

// tableFromRecords 행 목록을 RawTable로 변환
func tableFromRecords(records [][]string) (*model.RawTable, error) {
	if len(records) == 0 {
		return nil, errors.New("empty table")
	}

	return &model.RawTable{
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}
