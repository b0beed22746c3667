package repository

import (
	"context"
	"sort"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type budgetItemTemplateRecord struct {
	ID          string  `dynamodbav:"id"`
	ItemType    string  `dynamodbav:"item_type"`
	Description string  `dynamodbav:"description"`
	Unit        string  `dynamodbav:"unit"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	IsActive    bool    `dynamodbav:"is_active"`
}

// BudgetItemTemplateDynamoRepository reads the item presets table.
// The table is small and seeded out of band, so a filtered scan is enough.
type BudgetItemTemplateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBudgetItemTemplateRepository = (*BudgetItemTemplateDynamoRepository)(nil)

func NewBudgetItemTemplateDynamoRepository(ddb DynamoAPI, tableName string) *BudgetItemTemplateDynamoRepository {
	return &BudgetItemTemplateDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListActive returns active templates ordered by item type then description.
func (r *BudgetItemTemplateDynamoRepository) ListActive(ctx context.Context) ([]entities.BudgetItemTemplate, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#is_active = :active"),
		ExpressionAttributeNames: map[string]string{"#is_active": "is_active"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	templates, err := unmarshalAll(raw, fromBudgetItemTemplateRecord)
	if err != nil {
		return nil, err
	}

	order := make(map[entities.ItemType]int, len(entities.ItemTypes))
	for i, t := range entities.ItemTypes {
		order[t] = i
	}
	rank := func(t entities.ItemType) int {
		if i, ok := order[t]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(templates, func(i, j int) bool {
		a, b := templates[i], templates[j]
		if rank(a.ItemType) != rank(b.ItemType) {
			return rank(a.ItemType) < rank(b.ItemType)
		}
		return a.Description < b.Description
	})
	return templates, nil
}

func fromBudgetItemTemplateRecord(rec budgetItemTemplateRecord) entities.BudgetItemTemplate {
	return entities.BudgetItemTemplate{
		ID:          rec.ID,
		ItemType:    entities.ItemType(rec.ItemType),
		Description: rec.Description,
		Unit:        rec.Unit,
		UnitPrice:   entities.Amount(rec.UnitPrice),
		IsActive:    rec.IsActive,
	}
}
