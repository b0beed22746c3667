package repository

import (
	"context"
	"fmt"
	"sort"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	itemsBudgetIDIndex = "budget_id-index"
	maxBatchRetries    = 5
)

type budgetItemRecord struct {
	ID          string  `dynamodbav:"id"`
	BudgetID    string  `dynamodbav:"budget_id"`
	ItemType    string  `dynamodbav:"item_type"`
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	Unit        string  `dynamodbav:"unit"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	TotalPrice  float64 `dynamodbav:"total_price"`
	Notes       string  `dynamodbav:"notes,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// BudgetItemDynamoRepository persists BudgetItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: budget_id-index (PK: budget_id, SK: created_at)
type BudgetItemDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetItemRepository = (*BudgetItemDynamoRepository)(nil)

func NewBudgetItemDynamoRepository(ddb DynamoAPI, tableName string) *BudgetItemDynamoRepository {
	return &BudgetItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetItemDynamoRepository) Create(ctx context.Context, it entities.BudgetItem) (entities.BudgetItem, error) {
	av, err := attributevalue.MarshalMap(toBudgetItemRecord(it))
	if err != nil {
		return entities.BudgetItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.BudgetItem{}, err
	}
	return it, nil
}

func (r *BudgetItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.BudgetItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BudgetItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.BudgetItem{}, nil
	}

	var rec budgetItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.BudgetItem{}, err
	}
	return fromBudgetItemRecord(rec), nil
}

func (r *BudgetItemDynamoRepository) ListByBudgetID(ctx context.Context, budgetID string) ([]entities.BudgetItem, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(itemsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": stringValue(budgetID),
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	items, err := unmarshalAll(raw, fromBudgetItemRecord)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

// Update replaces the stored item. The item must already exist.
func (r *BudgetItemDynamoRepository) Update(ctx context.Context, it entities.BudgetItem) (entities.BudgetItem, error) {
	av, err := attributevalue.MarshalMap(toBudgetItemRecord(it))
	if err != nil {
		return entities.BudgetItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.BudgetItem{}, interfaces.ErrPreconditionFailed
		}
		return entities.BudgetItem{}, err
	}
	return it, nil
}

func (r *BudgetItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

// DeleteByBudgetID removes every item of a budget in batches of 25.
func (r *BudgetItemDynamoRepository) DeleteByBudgetID(ctx context.Context, budgetID string) error {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(itemsBudgetIDIndex),
		KeyConditionExpression: aws.String("budget_id = :bid"),
		ProjectionExpression:   aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": stringValue(budgetID),
		},
	})
	if err != nil {
		return err
	}

	for start := 0; start < len(raw); start += maxBatchWrite {
		end := start + maxBatchWrite
		if end > len(raw) {
			end = len(raw)
		}
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, item := range raw[start:end] {
			reqs = append(reqs, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: map[string]types.AttributeValue{"id": item["id"]}},
			})
		}
		if err := r.batchWrite(ctx, reqs); err != nil {
			return err
		}
	}
	return nil
}

func (r *BudgetItemDynamoRepository) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for attempt := 0; attempt < maxBatchRetries; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems[r.tableName]) == 0 {
			return nil
		}
		pending = out.UnprocessedItems
	}
	return fmt.Errorf("batch write: %d items left unprocessed", len(pending[r.tableName]))
}

func toBudgetItemRecord(it entities.BudgetItem) budgetItemRecord {
	return budgetItemRecord{
		ID:          it.ID,
		BudgetID:    it.BudgetID,
		ItemType:    string(it.ItemType),
		Description: it.Description,
		Quantity:    it.Quantity.Float64(),
		Unit:        it.Unit,
		UnitPrice:   it.UnitPrice.Float64(),
		TotalPrice:  it.TotalPrice.Float64(),
		Notes:       it.Notes,
		CreatedAt:   formatTime(it.CreatedAt),
		UpdatedAt:   formatTime(it.UpdatedAt),
	}
}

func fromBudgetItemRecord(rec budgetItemRecord) entities.BudgetItem {
	return entities.BudgetItem{
		ID:          rec.ID,
		BudgetID:    rec.BudgetID,
		ItemType:    entities.ItemType(rec.ItemType),
		Description: rec.Description,
		Quantity:    entities.Amount(rec.Quantity),
		Unit:        rec.Unit,
		UnitPrice:   entities.Amount(rec.UnitPrice),
		TotalPrice:  entities.Amount(rec.TotalPrice),
		Notes:       rec.Notes,
		CreatedAt:   parseTime(rec.CreatedAt),
		UpdatedAt:   parseTime(rec.UpdatedAt),
	}
}
