package repository

import (
	"context"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUploadsTableName = "uploads"
	uploadsOwnerIndex       = "owner_email-index"
)

type columnStatItem struct {
	NonEmpty     int `dynamodbav:"non_empty"`
	Empty        int `dynamodbav:"empty"`
	UniqueValues int `dynamodbav:"unique_values"`
}

type uploadMetricsItem struct {
	Rows         int                       `dynamodbav:"rows"`
	Columns      int                       `dynamodbav:"columns"`
	MissingCells int                       `dynamodbav:"missing_cells"`
	MissingRatio string                    `dynamodbav:"missing_ratio"`
	ColumnStats  map[string]columnStatItem `dynamodbav:"column_stats,omitempty"`
	SampleRows   []map[string]*string      `dynamodbav:"sample_rows"`
}

type uploadItem struct {
	ID           string             `dynamodbav:"id"`
	OwnerEmail   string             `dynamodbav:"owner_email"`
	FileName     string             `dynamodbav:"file_name"`
	FileSize     int64              `dynamodbav:"file_size"`
	Status       string             `dynamodbav:"status"`
	CreatedAt    string             `dynamodbav:"created_at"`
	ProcessedAt  string             `dynamodbav:"processed_at,omitempty"`
	Metrics      *uploadMetricsItem `dynamodbav:"metrics,omitempty"`
	ErrorMessage string             `dynamodbav:"error_message,omitempty"`
}

// UploadDynamoRepository persists Upload records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_email-index (PK: owner_email)
type UploadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUploadRepository = (*UploadDynamoRepository)(nil)

func NewUploadDynamoRepository(ddb *dynamodb.Client) *UploadDynamoRepository {
	return &UploadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("UPLOADS_TABLE", defaultUploadsTableName),
	}
}

func (r *UploadDynamoRepository) Create(ctx context.Context, u entities.Upload) (entities.Upload, error) {
	av, err := attributevalue.MarshalMap(toUploadItem(u))
	if err != nil {
		return entities.Upload{}, err
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
		return entities.Upload{}, err
	}
	return u, nil
}

func (r *UploadDynamoRepository) Save(ctx context.Context, u entities.Upload) (entities.Upload, error) {
	av, err := attributevalue.MarshalMap(toUploadItem(u))
	if err != nil {
		return entities.Upload{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Upload{}, err
	}
	return u, nil
}

func (r *UploadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Upload, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Upload{}, err
	}
	if len(out.Item) == 0 {
		return entities.Upload{}, nil
	}

	var it uploadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Upload{}, err
	}
	return fromUploadItem(it), nil
}

func (r *UploadDynamoRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]entities.Upload, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(uploadsOwnerIndex),
		KeyConditionExpression: aws.String("owner_email = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerEmail},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Upload, 0, len(out.Items))
	for _, raw := range out.Items {
		var it uploadItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromUploadItem(it))
	}
	return items, nil
}

func toUploadItem(u entities.Upload) uploadItem {
	it := uploadItem{
		ID:           u.ID,
		OwnerEmail:   u.OwnerEmail,
		FileName:     u.FileName,
		FileSize:     u.FileSize,
		Status:       string(u.Status),
		CreatedAt:    formatTime(u.CreatedAt),
		ProcessedAt:  formatTimePtr(u.ProcessedAt),
		ErrorMessage: u.ErrorMessage,
	}
	if m := u.Metrics; m != nil {
		stats := make(map[string]columnStatItem, len(m.ColumnStats))
		for k, s := range m.ColumnStats {
			stats[k] = columnStatItem(s)
		}
		it.Metrics = &uploadMetricsItem{
			Rows:         m.Rows,
			Columns:      m.Columns,
			MissingCells: m.MissingCells,
			MissingRatio: floatToString(m.MissingRatio),
			ColumnStats:  stats,
			SampleRows:   m.SampleRows,
		}
	}
	return it
}

func fromUploadItem(it uploadItem) entities.Upload {
	u := entities.Upload{
		ID:           it.ID,
		OwnerEmail:   it.OwnerEmail,
		FileName:     it.FileName,
		FileSize:     it.FileSize,
		Status:       entities.UploadStatus(it.Status),
		CreatedAt:    parseTime(it.CreatedAt),
		ProcessedAt:  parseTimePtr(it.ProcessedAt),
		ErrorMessage: it.ErrorMessage,
	}
	if m := it.Metrics; m != nil {
		stats := make(map[string]entities.ColumnStat, len(m.ColumnStats))
		for k, s := range m.ColumnStats {
			stats[k] = entities.ColumnStat(s)
		}
		u.Metrics = &entities.UploadMetrics{
			Rows:         m.Rows,
			Columns:      m.Columns,
			MissingCells: m.MissingCells,
			MissingRatio: stringToFloat(m.MissingRatio),
			ColumnStats:  stats,
			SampleRows:   m.SampleRows,
		}
	}
	return u
}
