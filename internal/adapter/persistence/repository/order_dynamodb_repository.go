package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"revolux/internal/domain/entities"
	"revolux/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Updates are conditional on the stored version being older than the one
// written. A rejected update returns interfaces.ErrStaleOrderWrite instead of
// overwriting a newer document.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	orders := make([]entities.Order, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, patch entities.OrderPatch, version int, updatedAt time.Time) (entities.Order, error) {
	expr, values, names, err := buildOrderUpdate(patch, version, updatedAt)
	if err != nil {
		return entities.Order{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND (attribute_not_exists(#version) OR #version < :version)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Order{}, conditionalUpdateError(err, id, version)
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// conditionalUpdateError maps a failed version condition to
// interfaces.ErrStaleOrderWrite so the store reports the lost write.
func conditionalUpdateError(err error, id string, version int) error {
	var cfe *types.ConditionalCheckFailedException
	if !errors.As(err, &cfe) {
		return err
	}
	log.Printf("[order][repository] conditional update rejected order_id=%s version=%d", id, version)
	return fmt.Errorf("%w: order_id=%s version=%d", interfaces.ErrStaleOrderWrite, id, version)
}

// buildOrderUpdate turns the set fields of a patch into a SET expression.
// version and updated_at are always written.
func buildOrderUpdate(patch entities.OrderPatch, version int, updatedAt time.Time) (string, map[string]types.AttributeValue, map[string]string, error) {
	b := &updateBuilder{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{},
	}

	if patch.SKU != nil {
		b.set("sku", *patch.SKU)
	}
	if patch.Item != nil {
		b.set("item", *patch.Item)
	}
	if patch.Description != nil {
		b.set("description", *patch.Description)
	}
	if patch.Category != nil {
		b.set("category", *patch.Category)
	}
	if patch.Quantity != nil {
		b.set("quantity", *patch.Quantity)
	}
	if patch.EstimatedValue != nil {
		b.set("estimated_value", floatToString(*patch.EstimatedValue))
	}
	if patch.CostCenter != nil {
		b.set("cost_center", *patch.CostCenter)
	}
	if patch.Supplier != nil {
		b.set("supplier", *patch.Supplier)
	}
	if patch.Suppliers != nil {
		b.set("suppliers", *patch.Suppliers)
	}
	if patch.Source != nil {
		b.set("source", *patch.Source)
	}
	if patch.Deadline != nil {
		b.set("deadline", formatTime(*patch.Deadline))
	}
	if patch.ReminderDate != nil {
		b.set("reminder_date", formatTime(*patch.ReminderDate))
	}
	if patch.Status != nil {
		b.set("status", string(*patch.Status))
	}
	if patch.StrategyObservation != nil {
		b.set("strategy_observation", *patch.StrategyObservation)
	}
	if patch.Comments != nil {
		b.set("comments", toCommentItems(*patch.Comments))
	}
	if patch.PurchaseProcess != nil {
		b.set("purchase_process", toPurchaseProcessItem(*patch.PurchaseProcess))
	}

	b.values[":version"] = &types.AttributeValueMemberN{Value: strconv.Itoa(version)}
	b.names["#version"] = "version"
	b.sets = append(b.sets, "#version = :version")
	b.set("updated_at", formatTime(updatedAt))

	if b.err != nil {
		return "", nil, nil, b.err
	}
	return "SET " + strings.Join(b.sets, ", "), b.values, b.names, nil
}

type updateBuilder struct {
	sets   []string
	values map[string]types.AttributeValue
	names  map[string]string
	err    error
}

func (b *updateBuilder) set(attr string, v any) {
	if b.err != nil {
		return
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("marshal %s: %w", attr, err)
		return
	}
	n := len(b.sets)
	name := fmt.Sprintf("#f%d", n)
	value := fmt.Sprintf(":v%d", n)
	b.names[name] = attr
	b.values[value] = av
	b.sets = append(b.sets, name+" = "+value)
}
