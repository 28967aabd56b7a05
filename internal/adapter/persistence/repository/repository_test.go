package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var repoNow = time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)

func sampleOrder() entities.Order {
	deadline := repoNow.AddDate(0, 0, 10)
	paid := repoNow.Add(time.Hour)
	return entities.Order{
		ID:             "O1",
		SKU:            "SKU-1",
		Item:           "Parafuso",
		Quantity:       500,
		EstimatedValue: 2.5,
		CostCenter:     "CC-100",
		Suppliers:      []string{"Aço Forte"},
		CreatedAt:      repoNow,
		Deadline:       &deadline,
		Status:         entities.OrderStatusPaymentDone,
		Comments: []entities.Comment{
			{ID: "c1", Text: "urgente", User: "ana@revolux.com", Timestamp: repoNow},
		},
		PurchaseProcess: &entities.PurchaseProcess{
			ID:      "pp1",
			OrderID: "O1",
			Stage:   entities.PurchaseStagePaymentCompleted,
			Quotations: []entities.SupplierQuotation{
				{ID: "q1", SupplierID: "aco-forte", SupplierName: "Aço Forte", UnitPrice: 2.4, TotalPrice: 1200, DeliveryTime: 5, Status: entities.QuotationStatusApproved, SubmittedAt: repoNow},
			},
			SelectedQuotation: "q1",
			PaymentStatus:     entities.PaymentStatusCompleted,
			PaymentDate:       &paid,
			PaymentBy:         "bruno+gestor@revolux.com",
			PaymentReference:  "mp-123",
		},
		Version:   4,
		UpdatedAt: paid,
	}
}

func TestOrderItemRoundTrip(t *testing.T) {
	o := sampleOrder()
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if v, ok := av["estimated_value"].(*types.AttributeValueMemberS); !ok || v.Value != "2.5" {
		t.Fatalf("expected decimal string estimated_value, got %#v", av["estimated_value"])
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got := fromOrderItem(it)
	if !reflect.DeepEqual(got, o) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, o)
	}
}

func TestBuildOrderUpdate(t *testing.T) {
	t.Run("only version and updated_at", func(t *testing.T) {
		expr, values, names, err := buildOrderUpdate(entities.OrderPatch{}, 2, repoNow)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if expr != "SET #version = :version, #f1 = :v1" {
			t.Fatalf("unexpected expression: %s", expr)
		}
		if names["#f1"] != "updated_at" || names["#version"] != "version" {
			t.Fatalf("unexpected names: %+v", names)
		}
		if v := values[":version"].(*types.AttributeValueMemberN); v.Value != "2" {
			t.Fatalf("unexpected version value: %s", v.Value)
		}
	})

	t.Run("patched fields", func(t *testing.T) {
		status := entities.OrderStatusStrategyApproved
		value := 3.75
		pp := entities.PurchaseProcess{ID: "pp1", OrderID: "O1", Stage: entities.PurchaseStageQuotationRequest, Quotations: []entities.SupplierQuotation{}}
		expr, values, names, err := buildOrderUpdate(entities.OrderPatch{
			Status:          &status,
			EstimatedValue:  &value,
			PurchaseProcess: &pp,
		}, 3, repoNow)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		for _, attr := range []string{"estimated_value", "status", "purchase_process", "updated_at"} {
			found := false
			for placeholder, name := range names {
				if name == attr && strings.Contains(expr, placeholder+" = ") {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %s in %s (%+v)", attr, expr, names)
			}
		}
		if len(values) != 5 {
			t.Fatalf("expected 5 values, got %d", len(values))
		}
	})
}

func TestConditionalUpdateError(t *testing.T) {
	t.Run("failed version condition is a stale write", func(t *testing.T) {
		cause := fmt.Errorf("operation error DynamoDB: UpdateItem, %w", &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")})
		err := conditionalUpdateError(cause, "O1", 4)
		if !errors.Is(err, interfaces.ErrStaleOrderWrite) {
			t.Fatalf("expected ErrStaleOrderWrite, got %v", err)
		}
		if !strings.Contains(err.Error(), "order_id=O1 version=4") {
			t.Fatalf("expected order and version in %q", err.Error())
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		cause := errors.New("throttled")
		if err := conditionalUpdateError(cause, "O1", 4); err != cause {
			t.Fatalf("expected original error, got %v", err)
		}
	})
}

func TestUploadItemRoundTrip(t *testing.T) {
	processed := repoNow.Add(time.Minute)
	qty, sku := "10", "SKU-1"
	u := entities.Upload{
		ID:          "u1",
		OwnerEmail:  "ana@revolux.com",
		FileName:    "pedidos.csv",
		FileSize:    42,
		Status:      entities.UploadStatusProcessed,
		CreatedAt:   repoNow,
		ProcessedAt: &processed,
		Metrics: &entities.UploadMetrics{
			Rows:         1,
			Columns:      2,
			MissingCells: 1,
			MissingRatio: 0.5,
			ColumnStats:  map[string]entities.ColumnStat{"qty": {NonEmpty: 1, UniqueValues: 1}, "sku": {Empty: 1}},
			SampleRows:   []map[string]*string{{"qty": &qty, "sku": &sku}},
		},
	}
	av, err := attributevalue.MarshalMap(toUploadItem(u))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var it uploadItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := fromUploadItem(it); !reflect.DeepEqual(got, u) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, u)
	}
}

func TestUploadMemoryRepository(t *testing.T) {
	r := NewUploadMemoryRepository()
	ctx := context.Background()

	first := entities.Upload{ID: "u1", OwnerEmail: "ana@revolux.com", CreatedAt: repoNow}
	second := entities.Upload{ID: "u2", OwnerEmail: "ana@revolux.com", CreatedAt: repoNow.Add(time.Minute)}
	other := entities.Upload{ID: "u3", OwnerEmail: "bruno@revolux.com", CreatedAt: repoNow}
	for _, u := range []entities.Upload{first, second, other} {
		if _, err := r.Create(ctx, u); err != nil {
			t.Fatalf("create %s: %v", u.ID, err)
		}
	}
	if _, err := r.Create(ctx, first); err == nil {
		t.Fatalf("expected duplicate error")
	}

	list, _ := r.ListByOwner(ctx, "ana@revolux.com")
	if len(list) != 2 || list[0].ID != "u2" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	first.Status = entities.UploadStatusProcessed
	if _, err := r.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got, _ := r.GetByID(ctx, "u1"); got.Status != entities.UploadStatusProcessed {
		t.Fatalf("expected saved status, got %+v", got)
	}
	if got, _ := r.GetByID(ctx, "missing"); got.ID != "" {
		t.Fatalf("expected zero upload, got %+v", got)
	}
}
