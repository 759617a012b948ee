package model

// RawTable 업로드된 표 형식 데이터
// 첫 행은 컬럼명, 나머지는 데이터 행. 한 번의 업로드-분석 사이클 동안만 유지된다.
type RawTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// RowCount 데이터 행 수
func (t *RawTable) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}
