package repository

import (
	"context"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	formLinksSlugIndex   = "slug-index"
	formLinksUserIDIndex = "user_id-index"
)

type formLinkRecord struct {
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	Slug             string `dynamodbav:"slug"`
	Title            string `dynamodbav:"title"`
	Description      string `dynamodbav:"description,omitempty"`
	CustomMessage    string `dynamodbav:"custom_message,omitempty"`
	PrimaryColor     string `dynamodbav:"primary_color,omitempty"`
	IsActive         bool   `dynamodbav:"is_active"`
	ViewsCount       int    `dynamodbav:"views_count"`
	SubmissionsCount int    `dynamodbav:"submissions_count"`
	LastViewedAt     string `dynamodbav:"last_viewed_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// FormLinkDynamoRepository persists BudgetFormLink entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug)
//   - GSI: user_id-index (PK: user_id)
//
// Slug uniqueness and the one-link-per-user rule are enforced with keys in
// the unique keys table, written in the same transaction as the link.
type FormLinkDynamoRepository struct {
	ddb             DynamoAPI
	tableName       string
	uniqueKeysTable string
}

var _ interfaces.IFormLinkRepository = (*FormLinkDynamoRepository)(nil)

func NewFormLinkDynamoRepository(ddb DynamoAPI, tableName, uniqueKeysTable string) *FormLinkDynamoRepository {
	return &FormLinkDynamoRepository{ddb: ddb, tableName: tableName, uniqueKeysTable: uniqueKeysTable}
}

func (r *FormLinkDynamoRepository) Create(ctx context.Context, l entities.BudgetFormLink) (entities.BudgetFormLink, error) {
	av, err := attributevalue.MarshalMap(toFormLinkRecord(l))
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	slugKey, err := putUniqueKey(r.uniqueKeysTable, interfaces.ScopeFormLinkSlug, l.Slug, l.UserID, l.CreatedAt)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	userKey, err := putUniqueKey(r.uniqueKeysTable, interfaces.ScopeFormLinkUser, l.UserID, l.UserID, l.CreatedAt)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			slugKey,
			userKey,
		},
	})
	if err != nil {
		return entities.BudgetFormLink{}, transactionError(err, map[int]error{
			1: &interfaces.UniqueConflictError{Scope: interfaces.ScopeFormLinkSlug, Value: l.Slug},
			2: &interfaces.UniqueConflictError{Scope: interfaces.ScopeFormLinkUser, Value: l.UserID},
		})
	}
	return l, nil
}

func (r *FormLinkDynamoRepository) GetByUserID(ctx context.Context, userID string) (entities.BudgetFormLink, error) {
	return r.queryOne(ctx, formLinksUserIDIndex, "user_id", userID)
}

func (r *FormLinkDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.BudgetFormLink, error) {
	return r.queryOne(ctx, formLinksSlugIndex, "slug", slug)
}

func (r *FormLinkDynamoRepository) queryOne(ctx context.Context, index, attr, value string) (entities.BudgetFormLink, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": stringValue(value),
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	if len(out.Items) == 0 {
		return entities.BudgetFormLink{}, nil
	}

	var rec formLinkRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.BudgetFormLink{}, err
	}
	return fromFormLinkRecord(rec), nil
}

// Update writes the editable fields. When the slug changed, the old slug
// key is released and the new one claimed in the same transaction.
func (r *FormLinkDynamoRepository) Update(ctx context.Context, l entities.BudgetFormLink, previousSlug string) (entities.BudgetFormLink, error) {
	update := r.settingsUpdate(l)

	if previousSlug == "" || previousSlug == l.Slug {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                 update.TableName,
			Key:                       update.Key,
			ConditionExpression:       update.ConditionExpression,
			UpdateExpression:          update.UpdateExpression,
			ExpressionAttributeNames:  update.ExpressionAttributeNames,
			ExpressionAttributeValues: update.ExpressionAttributeValues,
		})
		if err != nil {
			if isConditionalCheckFailed(err) {
				return entities.BudgetFormLink{}, interfaces.ErrPreconditionFailed
			}
			return entities.BudgetFormLink{}, err
		}
		return l, nil
	}

	claim, err := putUniqueKey(r.uniqueKeysTable, interfaces.ScopeFormLinkSlug, l.Slug, l.UserID, l.UpdatedAt)
	if err != nil {
		return entities.BudgetFormLink{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			claim,
			deleteUniqueKey(r.uniqueKeysTable, interfaces.ScopeFormLinkSlug, previousSlug),
			{Update: update},
		},
	})
	if err != nil {
		return entities.BudgetFormLink{}, transactionError(err, map[int]error{
			0: &interfaces.UniqueConflictError{Scope: interfaces.ScopeFormLinkSlug, Value: l.Slug},
			2: interfaces.ErrPreconditionFailed,
		})
	}
	return l, nil
}

func (r *FormLinkDynamoRepository) settingsUpdate(l entities.BudgetFormLink) *types.Update {
	return &types.Update{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(l.ID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #slug = :slug, #title = :title, #description = :description, " +
			"#custom_message = :custom_message, #primary_color = :primary_color, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#slug":           "slug",
			"#title":          "title",
			"#description":    "description",
			"#custom_message": "custom_message",
			"#primary_color":  "primary_color",
			"#updated_at":     "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug":           stringValue(l.Slug),
			":title":          stringValue(l.Title),
			":description":    stringValue(l.Description),
			":custom_message": stringValue(l.CustomMessage),
			":primary_color":  stringValue(l.PrimaryColor),
			":updated_at":     stringValue(formatTime(l.UpdatedAt)),
		},
	}
}

func (r *FormLinkDynamoRepository) SetActive(ctx context.Context, id string, active bool) (entities.BudgetFormLink, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #is_active = :active, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#is_active":  "is_active",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active":     &types.AttributeValueMemberBOOL{Value: active},
			":updated_at": stringValue(formatTime(time.Now())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.BudgetFormLink{}, nil
		}
		return entities.BudgetFormLink{}, err
	}

	var rec formLinkRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.BudgetFormLink{}, err
	}
	return fromFormLinkRecord(rec), nil
}

func (r *FormLinkDynamoRepository) RecordView(ctx context.Context, id string, at time.Time) error {
	return r.bump(ctx, id, "SET #last_viewed_at = :at ADD #views_count :one",
		map[string]string{"#last_viewed_at": "last_viewed_at", "#views_count": "views_count"},
		map[string]types.AttributeValue{":at": stringValue(formatTime(at))},
	)
}

func (r *FormLinkDynamoRepository) RecordSubmission(ctx context.Context, id string) error {
	return r.bump(ctx, id, "ADD #submissions_count :one",
		map[string]string{"#submissions_count": "submissions_count"},
		map[string]types.AttributeValue{},
	)
}

func (r *FormLinkDynamoRepository) bump(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) error {
	values[":one"] = numberValue(1)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
	})
	return err
}

func toFormLinkRecord(l entities.BudgetFormLink) formLinkRecord {
	return formLinkRecord{
		ID:               l.ID,
		UserID:           l.UserID,
		Slug:             l.Slug,
		Title:            l.Title,
		Description:      l.Description,
		CustomMessage:    l.CustomMessage,
		PrimaryColor:     l.PrimaryColor,
		IsActive:         l.IsActive,
		ViewsCount:       l.ViewsCount,
		SubmissionsCount: l.SubmissionsCount,
		LastViewedAt:     formatTimePtr(l.LastViewedAt),
		CreatedAt:        formatTime(l.CreatedAt),
		UpdatedAt:        formatTime(l.UpdatedAt),
	}
}

func fromFormLinkRecord(rec formLinkRecord) entities.BudgetFormLink {
	return entities.BudgetFormLink{
		ID:               rec.ID,
		UserID:           rec.UserID,
		Slug:             rec.Slug,
		Title:            rec.Title,
		Description:      rec.Description,
		CustomMessage:    rec.CustomMessage,
		PrimaryColor:     rec.PrimaryColor,
		IsActive:         rec.IsActive,
		ViewsCount:       rec.ViewsCount,
		SubmissionsCount: rec.SubmissionsCount,
		LastViewedAt:     parseTimePtr(rec.LastViewedAt),
		CreatedAt:        parseTime(rec.CreatedAt),
		UpdatedAt:        parseTime(rec.UpdatedAt),
	}
}
