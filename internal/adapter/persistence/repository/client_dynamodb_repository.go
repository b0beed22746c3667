package repository

import (
	"context"
	"errors"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const clientsUserIDIndex = "user_id-index"

type clientRecord struct {
	ID             string           `dynamodbav:"id"`
	UserID         string           `dynamodbav:"user_id"`
	Name           string           `dynamodbav:"name"`
	Email          string           `dynamodbav:"email"`
	Phone          string           `dynamodbav:"phone,omitempty"`
	SecondaryPhone string           `dynamodbav:"secondary_phone,omitempty"`
	ClientType     string           `dynamodbav:"client_type"`
	Document       string           `dynamodbav:"document,omitempty"`
	CompanyName    string           `dynamodbav:"company_name,omitempty"`
	Address        entities.Address `dynamodbav:"address"`
	Website        string           `dynamodbav:"website,omitempty"`
	Notes          string           `dynamodbav:"notes,omitempty"`
	IsActive       bool             `dynamodbav:"is_active"`
	TotalBudgets   int              `dynamodbav:"total_budgets"`
	TotalSpent     float64          `dynamodbav:"total_spent"`
	LastBudgetDate string           `dynamodbav:"last_budget_date,omitempty"`
	CreatedAt      string           `dynamodbav:"created_at"`
	UpdatedAt      string           `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientRecord(c))
	if err != nil {
		return entities.Client{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var rec clientRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Client{}, err
	}
	return fromClientRecord(rec), nil
}

func (r *ClientDynamoRepository) ListByUserID(ctx context.Context, userID string, includeInactive bool) ([]entities.Client, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringValue(userID),
		},
	}
	if !includeInactive {
		in.FilterExpression = aws.String("#is_active = :active")
		in.ExpressionAttributeNames = map[string]string{"#is_active": "is_active"}
		in.ExpressionAttributeValues[":active"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	raw, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return unmarshalAll(raw, fromClientRecord)
}

// FindByEmail returns the user's client with the given e-mail, if any.
func (r *ClientDynamoRepository) FindByEmail(ctx context.Context, userID, email string) (entities.Client, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":   stringValue(userID),
			":email": stringValue(email),
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	clients, err := unmarshalAll(raw, fromClientRecord)
	if err != nil {
		return entities.Client{}, err
	}

	var found entities.Client
	for _, c := range clients {
		if found.ID == "" || (c.IsActive && !found.IsActive) {
			found = c
		}
	}
	return found, nil
}

// Update writes the profile fields only; counters belong to the budget
// transactions.
func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	addr, err := attributevalue.Marshal(c.Address)
	if err != nil {
		return entities.Client{}, err
	}
	return r.update(ctx, c.ID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #name = :name, #email = :email, #phone = :phone, #secondary_phone = :secondary_phone, " +
			"#client_type = :client_type, #document = :document, #company_name = :company_name, " +
			"#address = :address, #website = :website, #notes = :notes, #updated_at = :updated_at"
		values := map[string]types.AttributeValue{
			":name":            stringValue(c.Name),
			":email":           stringValue(c.Email),
			":phone":           stringValue(c.Phone),
			":secondary_phone": stringValue(c.SecondaryPhone),
			":client_type":     stringValue(string(c.ClientType)),
			":document":        stringValue(c.Document),
			":company_name":    stringValue(c.CompanyName),
			":address":         addr,
			":website":         stringValue(c.Website),
			":notes":           stringValue(c.Notes),
			":updated_at":      stringValue(now),
		}
		names := map[string]string{
			"#name":            "name",
			"#email":           "email",
			"#phone":           "phone",
			"#secondary_phone": "secondary_phone",
			"#client_type":     "client_type",
			"#document":        "document",
			"#company_name":    "company_name",
			"#address":         "address",
			"#website":         "website",
			"#notes":           "notes",
			"#updated_at":      "updated_at",
		}
		return expr, values, names
	})
}

func (r *ClientDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.Client, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #is_active = :active, #updated_at = :updated_at",
			map[string]types.AttributeValue{
				":active":     &types.AttributeValueMemberBOOL{Value: active},
				":updated_at": stringValue(now),
			},
			map[string]string{
				"#is_active":  "is_active",
				"#updated_at": "updated_at",
			}
	})
}

func (r *ClientDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Client, error) {
	updateExpr, values, names := build(formatTime(time.Now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Client{}, interfaces.ErrPreconditionFailed
		}
		return entities.Client{}, err
	}
	var rec clientRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Client{}, err
	}
	return fromClientRecord(rec), nil
}

func toClientRecord(c entities.Client) clientRecord {
	return clientRecord{
		ID:             c.ID,
		UserID:         c.UserID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		SecondaryPhone: c.SecondaryPhone,
		ClientType:     string(c.ClientType),
		Document:       c.Document,
		CompanyName:    c.CompanyName,
		Address:        c.Address,
		Website:        c.Website,
		Notes:          c.Notes,
		IsActive:       c.IsActive,
		TotalBudgets:   c.TotalBudgets,
		TotalSpent:     c.TotalSpent,
		LastBudgetDate: formatTimePtr(c.LastBudgetDate),
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromClientRecord(rec clientRecord) entities.Client {
	return entities.Client{
		ID:             rec.ID,
		UserID:         rec.UserID,
		Name:           rec.Name,
		Email:          rec.Email,
		Phone:          rec.Phone,
		SecondaryPhone: rec.SecondaryPhone,
		ClientType:     entities.ClientType(rec.ClientType),
		Document:       rec.Document,
		CompanyName:    rec.CompanyName,
		Address:        rec.Address,
		Website:        rec.Website,
		Notes:          rec.Notes,
		IsActive:       rec.IsActive,
		TotalBudgets:   rec.TotalBudgets,
		TotalSpent:     rec.TotalSpent,
		LastBudgetDate: parseTimePtr(rec.LastBudgetDate),
		CreatedAt:      parseTime(rec.CreatedAt),
		UpdatedAt:      parseTime(rec.UpdatedAt),
	}
}
