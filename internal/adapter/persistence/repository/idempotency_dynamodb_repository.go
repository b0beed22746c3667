package repository

import (
	"context"
	"strconv"
	"time"

	"ongeo_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type idempotencyItem struct {
	PK        string `dynamodbav:"pk"`
	BudgetID  string `dynamodbav:"budget_id,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt int64  `dynamodbav:"expires_at"`
}

// IdempotencyDynamoRepository stores Idempotency-Key reservations.
//
// Table requirements:
//   - PK: pk (string, "<user_id>#<key>")
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB TTL deletion is lazy, so expired records are also treated as free
// by the reservation condition.
type IdempotencyDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IIdempotencyRepository = (*IdempotencyDynamoRepository)(nil)

func NewIdempotencyDynamoRepository(ddb DynamoAPI, tableName string) *IdempotencyDynamoRepository {
	return &IdempotencyDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func idempotencyPK(userID, key string) string { return userID + "#" + key }

func (r *IdempotencyDynamoRepository) Reserve(ctx context.Context, userID, key string, ttl time.Duration) (interfaces.IdempotencyRecord, error) {
	now := r.now()
	pk := idempotencyPK(userID, key)
	av, err := attributevalue.MarshalMap(idempotencyItem{
		PK:        pk,
		CreatedAt: formatTime(now),
		ExpiresAt: now.Add(ttl).Unix(),
	})
	if err != nil {
		return interfaces.IdempotencyRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk) OR #expires_at < :now"),
		ExpressionAttributeNames: map[string]string{
			"#pk":         "pk",
			"#expires_at": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})
	if err == nil {
		return interfaces.IdempotencyRecord{Reserved: true}, nil
	}
	if !isConditionalCheckFailed(err) {
		return interfaces.IdempotencyRecord{}, err
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            stringKey("pk", pk),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return interfaces.IdempotencyRecord{}, err
	}
	var it idempotencyItem
	if len(out.Item) > 0 {
		if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
			return interfaces.IdempotencyRecord{}, err
		}
	}
	return interfaces.IdempotencyRecord{BudgetID: it.BudgetID}, nil
}

func (r *IdempotencyDynamoRepository) Complete(ctx context.Context, userID, key, budgetID string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      stringKey("pk", idempotencyPK(userID, key)),
		UpdateExpression:         aws.String("SET #budget_id = :bid"),
		ExpressionAttributeNames: map[string]string{"#budget_id": "budget_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": stringValue(budgetID),
		},
	})
	return err
}

// Release frees a reservation whose request failed. Completed keys stay.
func (r *IdempotencyDynamoRepository) Release(ctx context.Context, userID, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      stringKey("pk", idempotencyPK(userID, key)),
		ConditionExpression:      aws.String("attribute_not_exists(#budget_id)"),
		ExpressionAttributeNames: map[string]string{"#budget_id": "budget_id"},
	})
	if isConditionalCheckFailed(err) {
		return nil
	}
	return err
}
