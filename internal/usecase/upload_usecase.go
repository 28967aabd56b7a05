package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrInvalidUpload  = errors.New("invalid upload")
)

// IUploadUseCase hands spreadsheets to the analyzer and tracks the outcome.
type IUploadUseCase interface {
	Analyze(ctx context.Context, owner entities.Actor, fileName string, size int64, r io.Reader) (entities.Upload, error)
	GetByID(ctx context.Context, id string) (entities.Upload, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]entities.Upload, error)
}

type UploadUseCase struct {
	repo     interfaces.IUploadRepository
	analyzer interfaces.ICSVAnalyzer
	now      func() time.Time
	newID    func() string
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(repo interfaces.IUploadRepository, analyzer interfaces.ICSVAnalyzer) *UploadUseCase {
	return &UploadUseCase{
		repo:     repo,
		analyzer: analyzer,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Analyze records the upload as pending, runs the analyzer and stores the
// outcome. An analyzer failure is not an error of the call: the returned
// upload carries status error and the message.
func (u *UploadUseCase) Analyze(ctx context.Context, owner entities.Actor, fileName string, size int64, r io.Reader) (entities.Upload, error) {
	fileName = strings.TrimSpace(filepath.Base(fileName))
	if strings.TrimSpace(owner.Email) == "" {
		return entities.Upload{}, ErrInvalidActor
	}
	if fileName == "" || fileName == "." || !strings.EqualFold(filepath.Ext(fileName), ".csv") {
		return entities.Upload{}, ErrInvalidUpload
	}
	if r == nil {
		return entities.Upload{}, ErrInvalidUpload
	}

	up := entities.Upload{
		ID:         u.newID(),
		OwnerEmail: owner.Email,
		FileName:   fileName,
		FileSize:   size,
		Status:     entities.UploadStatusPending,
		CreatedAt:  u.now(),
	}
	log.Printf("[upload][usecase] analyze start upload_id=%s owner=%s file=%s size=%d", up.ID, up.OwnerEmail, up.FileName, size)

	up, err := u.repo.Create(ctx, up)
	if err != nil {
		log.Printf("[upload][usecase] create failed file=%s err=%v", fileName, err)
		return entities.Upload{}, err
	}

	metrics, aerr := u.analyzer.Analyze(ctx, fileName, r)
	processedAt := u.now()
	up.ProcessedAt = &processedAt
	if aerr != nil {
		log.Printf("[upload][usecase] analyze failed upload_id=%s err=%v", up.ID, aerr)
		up.Status = entities.UploadStatusError
		up.ErrorMessage = aerr.Error()
	} else {
		up.Status = entities.UploadStatusProcessed
		up.Metrics = &metrics
	}

	saved, err := u.repo.Save(ctx, up)
	if err != nil {
		log.Printf("[upload][usecase] save failed upload_id=%s err=%v", up.ID, err)
		return up, err
	}
	log.Printf("[upload][usecase] analyze done upload_id=%s status=%s", saved.ID, saved.Status)
	return saved, nil
}

func (u *UploadUseCase) GetByID(ctx context.Context, id string) (entities.Upload, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Upload{}, ErrInvalidUpload
	}
	up, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Upload{}, err
	}
	if up.ID == "" {
		return entities.Upload{}, ErrUploadNotFound
	}
	return up, nil
}

func (u *UploadUseCase) ListByOwner(ctx context.Context, ownerEmail string) ([]entities.Upload, error) {
	ownerEmail = strings.TrimSpace(ownerEmail)
	if ownerEmail == "" {
		return nil, ErrInvalidActor
	}
	return u.repo.ListByOwner(ctx, ownerEmail)
}
