package bank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// decodeCSV reads rows from a CSV source whose header names the columns.
// Columns may appear in any order and extra columns are ignored.
func decodeCSV(path string, r io.Reader) ([]QuestionRecord, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: empty file", ErrInvalidRow)}
		}
		return nil, &LoadError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[name] = i
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Path: path, Column: col, Err: ErrMissingColumn}
		}
	}

	var records []QuestionRecord
	for n := 1; ; n++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Row: n, Err: err}
		}

		get := func(col string) string { return fields[index[col]] }
		raw := row{
			Category:     get(ColCategory),
			Prompt:       get(ColPrompt),
			Option1:      get(ColOption1),
			Option2:      get(ColOption2),
			Option3:      get(ColOption3),
			Correct:      get(ColCorrect),
			Explanation1: get(ColExplanation1),
			Explanation2: get(ColExplanation2),
			Explanation3: get(ColExplanation3),
		}

		rec, col, err := raw.toRecord(len(records))
		if err != nil {
			return nil, &LoadError{Path: path, Row: n, Column: col, Err: err}
		}
		records = append(records, rec)
	}

	return records, nil
}
