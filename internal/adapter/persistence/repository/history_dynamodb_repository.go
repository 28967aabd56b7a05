package repository

import (
	"context"
	"errors"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoryTableName = "order_history"
	historyOrderIDIndex     = "order_id-index"
)

type historyItem struct {
	ID        string                 `dynamodbav:"id"`
	OrderID   string                 `dynamodbav:"order_id"`
	Action    string                 `dynamodbav:"action"`
	UserEmail string                 `dynamodbav:"user_email"`
	Timestamp string                 `dynamodbav:"timestamp"`
	Details   string                 `dynamodbav:"details"`
	Metadata  map[string]interface{} `dynamodbav:"metadata,omitempty"`
}

// HistoryDynamoRepository persists HistoryEntry records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Entries are write-once: a second put for the same id is a no-op.
type HistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoryRepository = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *HistoryDynamoRepository) Append(ctx context.Context, e entities.HistoryEntry) error {
	av, err := attributevalue.MarshalMap(toHistoryItem(e))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func (r *HistoryDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})

	entries := make([]entities.HistoryEntry, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it historyItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromHistoryItem(it))
		}
	}
	return entries, nil
}

func toHistoryItem(e entities.HistoryEntry) historyItem {
	return historyItem{
		ID:        e.ID,
		OrderID:   e.OrderID,
		Action:    string(e.Action),
		UserEmail: e.UserEmail,
		Timestamp: formatTime(e.Timestamp),
		Details:   e.Details,
		Metadata:  e.Metadata,
	}
}

func fromHistoryItem(it historyItem) entities.HistoryEntry {
	return entities.HistoryEntry{
		ID:        it.ID,
		OrderID:   it.OrderID,
		Action:    entities.HistoryAction(it.Action),
		UserEmail: it.UserEmail,
		Timestamp: parseTime(it.Timestamp),
		Details:   it.Details,
		Metadata:  it.Metadata,
	}
}
