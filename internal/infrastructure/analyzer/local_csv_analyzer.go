package analyzer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"
)

const maxSampleRows = 10

// LocalCSVAnalyzer profiles a CSV in process. The first record is the
// header; blank header cells are named col_<index>.
type LocalCSVAnalyzer struct{}

var _ interfaces.ICSVAnalyzer = (*LocalCSVAnalyzer)(nil)

func NewLocalCSVAnalyzer() *LocalCSVAnalyzer {
	return &LocalCSVAnalyzer{}
}

func (a *LocalCSVAnalyzer) Analyze(ctx context.Context, fileName string, r io.Reader) (entities.UploadMetrics, error) {
	records, err := readRecords(ctx, r)
	if err != nil {
		log.Printf("[upload][analyzer] local parse failed file=%s err=%v", fileName, err)
		return entities.UploadMetrics{}, err
	}
	m := profile(records)
	log.Printf("[upload][analyzer] local analysis done file=%s rows=%d columns=%d", fileName, m.Rows, m.Columns)
	return m, nil
}

func readRecords(ctx context.Context, r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}
		records = append(records, rec)
	}
}

func profile(records [][]string) entities.UploadMetrics {
	if len(records) == 0 {
		return entities.UploadMetrics{SampleRows: []map[string]*string{}}
	}

	columns := 0
	for _, rec := range records {
		if len(rec) > columns {
			columns = len(rec)
		}
	}
	headers := make([]string, columns)
	for c := range headers {
		if c < len(records[0]) && records[0][c] != "" {
			headers[c] = records[0][c]
		} else {
			headers[c] = fmt.Sprintf("col_%d", c)
		}
	}

	stats := make(map[string]entities.ColumnStat, columns)
	uniques := make(map[string]map[string]struct{}, columns)
	for _, h := range headers {
		stats[h] = entities.ColumnStat{}
		uniques[h] = map[string]struct{}{}
	}

	missing := 0
	samples := make([]map[string]*string, 0, maxSampleRows)
	for _, rec := range records[1:] {
		sample := make(map[string]*string, columns)
		for c, h := range headers {
			st := stats[h]
			var val *string
			if c < len(rec) {
				v := rec[c]
				val = &v
			}
			if val == nil || *val == "" {
				missing++
				st.Empty++
			} else {
				st.NonEmpty++
				uniques[h][*val] = struct{}{}
			}
			stats[h] = st
			sample[h] = val
		}
		if len(samples) < maxSampleRows {
			samples = append(samples, sample)
		}
	}
	for h, st := range stats {
		st.UniqueValues = len(uniques[h])
		stats[h] = st
	}

	rows := len(records) - 1
	total := rows * columns
	if total == 0 {
		total = 1
	}
	return entities.UploadMetrics{
		Rows:         rows,
		Columns:      columns,
		MissingCells: missing,
		MissingRatio: float64(missing) / float64(total),
		ColumnStats:  stats,
		SampleRows:   samples,
	}
}
