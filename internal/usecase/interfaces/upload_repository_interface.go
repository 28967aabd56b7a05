package interfaces

import (
	"context"

	"revolux/internal/domain/entities"
)

// IUploadRepository tracks files handed to the analyzer.
type IUploadRepository interface {
	Create(ctx context.Context, u entities.Upload) (entities.Upload, error)
	Save(ctx context.Context, u entities.Upload) (entities.Upload, error)
	GetByID(ctx context.Context, id string) (entities.Upload, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]entities.Upload, error)
}
