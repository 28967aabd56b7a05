package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"revolux/internal/domain/entities"
	mock_interfaces "revolux/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestUploadUseCase(repo *mock_interfaces.MockIUploadRepository, analyzer *mock_interfaces.MockICSVAnalyzer) *UploadUseCase {
	uc := NewUploadUseCase(repo, analyzer)
	uc.now = func() time.Time { return testNow }
	uc.newID = sequentialIDs("upload")
	return uc
}

func TestUploadUseCase_Analyze(t *testing.T) {
	owner := entities.Actor{Email: "ana@revolux.com", Role: entities.RoleOperador}

	t.Run("rejects non csv", func(t *testing.T) {
		uc := newTestUploadUseCase(nil, nil)
		if _, err := uc.Analyze(context.Background(), owner, "pedidos.xlsx", 10, strings.NewReader("")); !errors.Is(err, ErrInvalidUpload) {
			t.Fatalf("expected ErrInvalidUpload, got %v", err)
		}
		if _, err := uc.Analyze(context.Background(), entities.Actor{}, "pedidos.csv", 10, strings.NewReader("")); !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUploadRepository(ctrl)
		analyzer := mock_interfaces.NewMockICSVAnalyzer(ctrl)
		uc := newTestUploadUseCase(repo, analyzer)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Upload{})).DoAndReturn(
			func(_ context.Context, u entities.Upload) (entities.Upload, error) {
				if u.Status != entities.UploadStatusPending || u.FileName != "pedidos.csv" || u.OwnerEmail != owner.Email {
					t.Fatalf("unexpected pending upload: %+v", u)
				}
				return u, nil
			},
		)
		analyzer.EXPECT().Analyze(gomock.Any(), "pedidos.csv", gomock.Any()).Return(entities.UploadMetrics{Rows: 2, Columns: 3}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.Upload) (entities.Upload, error) { return u, nil },
		)

		up, err := uc.Analyze(context.Background(), owner, "/tmp/uploads/pedidos.csv", 42, strings.NewReader("a,b,c\n1,2,3\n"))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if up.Status != entities.UploadStatusProcessed || up.Metrics == nil || up.Metrics.Rows != 2 || up.ProcessedAt == nil {
			t.Fatalf("unexpected upload: %+v", up)
		}
	})

	t.Run("analyzer failure marks error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUploadRepository(ctrl)
		analyzer := mock_interfaces.NewMockICSVAnalyzer(ctrl)
		uc := newTestUploadUseCase(repo, analyzer)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.Upload) (entities.Upload, error) { return u, nil },
		)
		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.UploadMetrics{}, errors.New("empty file"))
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.Upload) (entities.Upload, error) { return u, nil },
		)

		up, err := uc.Analyze(context.Background(), owner, "pedidos.CSV", 0, strings.NewReader(""))
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if up.Status != entities.UploadStatusError || up.ErrorMessage != "empty file" || up.Metrics != nil {
			t.Fatalf("unexpected upload: %+v", up)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUploadRepository(ctrl)
		uc := newTestUploadUseCase(repo, mock_interfaces.NewMockICSVAnalyzer(ctrl))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Upload{}, errors.New("db"))
		if _, err := uc.Analyze(context.Background(), owner, "pedidos.csv", 1, strings.NewReader("a")); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestUploadUseCase_Queries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUploadRepository(ctrl)
	uc := newTestUploadUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Upload{}, nil)
	if _, err := uc.GetByID(context.Background(), " u-1 "); !errors.Is(err, ErrUploadNotFound) {
		t.Fatalf("expected ErrUploadNotFound, got %v", err)
	}

	repo.EXPECT().ListByOwner(gomock.Any(), "ana@revolux.com").Return([]entities.Upload{{ID: "u-2"}}, nil)
	got, err := uc.ListByOwner(context.Background(), "ana@revolux.com")
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %+v err=%v", got, err)
	}
	if _, err := uc.ListByOwner(context.Background(), ""); !errors.Is(err, ErrInvalidActor) {
		t.Fatalf("expected ErrInvalidActor, got %v", err)
	}
}
