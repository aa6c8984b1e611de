package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "intake_orders"

// dynamoAPI is the slice of *dynamodb.Client the repository uses.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type orderRecordItem struct {
	ID            string `dynamodbav:"id"`
	Kind          string `dynamodbav:"kind"`
	Type          string `dynamodbav:"type"`
	ReferenceID   int64  `dynamodbav:"reference_id"`
	VendorName    string `dynamodbav:"vendor_name"`
	Currency      string `dynamodbav:"currency"`
	TotalAmount   string `dynamodbav:"total_amount"`
	InvoiceNumber string `dynamodbav:"invoice_number"`
	Status        string `dynamodbav:"status"`
	FailureReason string `dynamodbav:"failure_reason,omitempty"`
	LinesRaw      string `dynamodbav:"lines_raw,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// OrderHistoryDynamoRepository persists OrderRecord entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Lines are stored as a JSON string so the item shape stays flat.
type OrderHistoryDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IOrderHistoryRepository = (*OrderHistoryDynamoRepository)(nil)

func NewOrderHistoryDynamoRepository(ddb *dynamodb.Client) *OrderHistoryDynamoRepository {
	return newOrderHistoryDynamoRepository(ddb, getenvDefault("ORDERS_TABLE", defaultOrdersTableName))
}

func newOrderHistoryDynamoRepository(ddb dynamoAPI, tableName string) *OrderHistoryDynamoRepository {
	return &OrderHistoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderHistoryDynamoRepository) Create(ctx context.Context, rec entities.OrderRecord) (entities.OrderRecord, error) {
	it, err := toOrderRecordItem(rec)
	if err != nil {
		return entities.OrderRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderRecord{}, err
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
		return entities.OrderRecord{}, err
	}
	return rec, nil
}

func (r *OrderHistoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.OrderRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderRecord{}, nil
	}

	var it orderRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderRecord{}, err
	}
	return fromOrderRecordItem(it), nil
}

// List scans the whole table; the history is small and unordered in
// DynamoDB, so ordering is left to the caller.
func (r *OrderHistoryDynamoRepository) List(ctx context.Context) ([]entities.OrderRecord, error) {
	var (
		items    []entities.OrderRecord
		startKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromOrderRecordItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toOrderRecordItem(rec entities.OrderRecord) (orderRecordItem, error) {
	var linesRaw string
	if len(rec.LineItems) > 0 {
		b, err := json.Marshal(rec.LineItems)
		if err != nil {
			return orderRecordItem{}, err
		}
		linesRaw = string(b)
	}
	return orderRecordItem{
		ID:            rec.ID,
		Kind:          string(rec.Kind),
		Type:          string(rec.Type),
		ReferenceID:   rec.ReferenceID,
		VendorName:    rec.VendorName,
		Currency:      rec.Currency,
		TotalAmount:   floatToString(rec.TotalAmount),
		InvoiceNumber: rec.InvoiceNumber,
		Status:        rec.Status,
		FailureReason: rec.FailureReason,
		LinesRaw:      linesRaw,
		CreatedAt:     formatTime(rec.CreatedAt),
	}, nil
}

func fromOrderRecordItem(it orderRecordItem) entities.OrderRecord {
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	var lines []entities.ValidatedLineItem
	if it.LinesRaw != "" {
		_ = json.Unmarshal([]byte(it.LinesRaw), &lines)
	}
	return entities.OrderRecord{
		ID:            it.ID,
		Kind:          entities.MaterializationKind(it.Kind),
		Type:          entities.OrderKind(it.Type),
		ReferenceID:   it.ReferenceID,
		VendorName:    it.VendorName,
		Currency:      it.Currency,
		TotalAmount:   total,
		InvoiceNumber: it.InvoiceNumber,
		Status:        it.Status,
		FailureReason: it.FailureReason,
		LineItems:     lines,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
