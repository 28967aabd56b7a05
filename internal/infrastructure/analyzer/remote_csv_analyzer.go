package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"
)

const defaultRemoteTimeout = 30 * time.Second

// RemoteCSVAnalyzer posts the file to the analysis function
// (POST {baseURL}/analyze-csv, multipart field "file").
type RemoteCSVAnalyzer struct {
	endpoint string
	client   *http.Client
}

var _ interfaces.ICSVAnalyzer = (*RemoteCSVAnalyzer)(nil)

func NewRemoteCSVAnalyzer(baseURL string) *RemoteCSVAnalyzer {
	return &RemoteCSVAnalyzer{
		endpoint: strings.TrimRight(baseURL, "/") + "/analyze-csv",
		client:   &http.Client{Timeout: defaultRemoteTimeout},
	}
}

// remoteMetrics is the function's response body.
type remoteMetrics struct {
	Rows         int     `json:"rows"`
	Columns      int     `json:"columns"`
	MissingCells int     `json:"missingCells"`
	MissingRatio float64 `json:"missingRatio"`
	ColumnStats  map[string]struct {
		NonEmpty     int `json:"nonEmpty"`
		Empty        int `json:"empty"`
		UniqueValues int `json:"uniqueValues"`
	} `json:"columnStats"`
	SampleRows []map[string]*string `json:"sampleRows"`
}

func (a *RemoteCSVAnalyzer) Analyze(ctx context.Context, fileName string, r io.Reader) (entities.UploadMetrics, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return entities.UploadMetrics{}, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return entities.UploadMetrics{}, err
	}
	if err := mw.Close(); err != nil {
		return entities.UploadMetrics{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, body)
	if err != nil {
		return entities.UploadMetrics{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	log.Printf("[upload][analyzer] remote analysis start file=%s endpoint=%s", fileName, a.endpoint)
	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[upload][analyzer] remote analysis failed file=%s err=%v", fileName, err)
		return entities.UploadMetrics{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		txt, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return entities.UploadMetrics{}, fmt.Errorf("analysis failed (%d) %s", resp.StatusCode, strings.TrimSpace(string(txt)))
	}

	var rm remoteMetrics
	if err := json.NewDecoder(resp.Body).Decode(&rm); err != nil {
		return entities.UploadMetrics{}, fmt.Errorf("invalid analysis response: %w", err)
	}

	m := entities.UploadMetrics{
		Rows:         rm.Rows,
		Columns:      rm.Columns,
		MissingCells: rm.MissingCells,
		MissingRatio: rm.MissingRatio,
		SampleRows:   rm.SampleRows,
	}
	if m.SampleRows == nil {
		m.SampleRows = []map[string]*string{}
	}
	if len(rm.ColumnStats) > 0 {
		m.ColumnStats = make(map[string]entities.ColumnStat, len(rm.ColumnStats))
		for k, s := range rm.ColumnStats {
			m.ColumnStats[k] = entities.ColumnStat{NonEmpty: s.NonEmpty, Empty: s.Empty, UniqueValues: s.UniqueValues}
		}
	}
	log.Printf("[upload][analyzer] remote analysis done file=%s rows=%d", fileName, m.Rows)
	return m, nil
}
