package interfaces

import (
	"context"
	"io"

	"revolux/internal/domain/entities"
)

// ICSVAnalyzer computes the tabular profile of an uploaded file.
type ICSVAnalyzer interface {
	Analyze(ctx context.Context, fileName string, r io.Reader) (entities.UploadMetrics, error)
}
