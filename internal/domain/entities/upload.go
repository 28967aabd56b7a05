package entities

import "time"

type UploadStatus string

const (
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusProcessed UploadStatus = "processed"
	UploadStatusError     UploadStatus = "error"
)

// ColumnStat summarizes one CSV column.
type ColumnStat struct {
	NonEmpty     int `json:"non_empty"`
	Empty        int `json:"empty"`
	UniqueValues int `json:"unique_values"`
}

// UploadMetrics is the tabular profile returned by the analyzer. The
// service treats it as opaque data attached to the upload record.
type UploadMetrics struct {
	Rows         int                   `json:"rows"`
	Columns      int                   `json:"columns"`
	MissingCells int                   `json:"missing_cells"`
	MissingRatio float64               `json:"missing_ratio"`
	ColumnStats  map[string]ColumnStat `json:"column_stats,omitempty"`
	SampleRows   []map[string]*string  `json:"sample_rows"`
}

// Upload tracks a file handed to the ingestion collaborator.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_email-index): owner_email
type Upload struct {
	ID           string         `json:"id"`
	OwnerEmail   string         `json:"owner_email"`
	FileName     string         `json:"file_name"`
	FileSize     int64          `json:"file_size"`
	Status       UploadStatus   `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	ProcessedAt  *time.Time     `json:"processed_at,omitempty"`
	Metrics      *UploadMetrics `json:"metrics,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
}
