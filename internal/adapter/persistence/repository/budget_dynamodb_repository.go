package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"ongeo_api/internal/domain/entities"
	"ongeo_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const budgetsUserIDIndex = "user_id-index"

type budgetRecord struct {
	ID               string                 `dynamodbav:"id"`
	UserID           string                 `dynamodbav:"user_id"`
	ClientID         string                 `dynamodbav:"client_id,omitempty"`
	FormLinkID       string                 `dynamodbav:"form_link_id,omitempty"`
	Request          entities.BudgetRequest `dynamodbav:"budget_request"`
	Result           entities.BudgetResult  `dynamodbav:"budget_result"`
	Total            *float64               `dynamodbav:"total,omitempty"`
	TotalPrice       *float64               `dynamodbav:"total_price,omitempty"`
	Status           string                 `dynamodbav:"status"`
	CustomLink       string                 `dynamodbav:"custom_link"`
	CreatedAt        string                 `dynamodbav:"created_at"`
	UpdatedAt        string                 `dynamodbav:"updated_at"`
	ApprovalDate     string                 `dynamodbav:"approval_date,omitempty"`
	RejectionDate    string                 `dynamodbav:"rejection_date,omitempty"`
	RejectionComment string                 `dynamodbav:"rejection_comment,omitempty"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - budgets PK: id (string); GSI user_id-index (PK: user_id, SK: created_at)
//   - unique_keys PK: pk (string), holding "budget_link#<custom_link>"
//   - clients PK: id (string), counters updated in the same transaction
type BudgetDynamoRepository struct {
	ddb             DynamoAPI
	tableName       string
	clientsTable    string
	uniqueKeysTable string
	now             func() time.Time
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoAPI, tableName, clientsTable, uniqueKeysTable string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{
		ddb:             ddb,
		tableName:       tableName,
		clientsTable:    clientsTable,
		uniqueKeysTable: uniqueKeysTable,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Create writes the budget, claims its custom link and creates or bumps the
// client in a single transaction.
func (r *BudgetDynamoRepository) Create(ctx context.Context, c interfaces.BudgetCreation) (entities.Budget, error) {
	b := c.Budget
	av, err := attributevalue.MarshalMap(toBudgetRecord(b))
	if err != nil {
		return entities.Budget{}, err
	}
	linkKey, err := putUniqueKey(r.uniqueKeysTable, interfaces.ScopeBudgetLink, b.CustomLink, b.ID, b.CreatedAt)
	if err != nil {
		return entities.Budget{}, err
	}

	ops := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.tableName),
			Item:                     av,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		linkKey,
	}

	switch {
	case c.NewClient != nil:
		cav, err := attributevalue.MarshalMap(toClientRecord(*c.NewClient))
		if err != nil {
			return entities.Budget{}, err
		}
		ops = append(ops, types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(r.clientsTable),
			Item:                     cav,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}})
	case c.ExistingClientID != "":
		ops = append(ops, r.bumpClient(c.ExistingClientID, b.UserID, 1, b.RecordedTotal(), b.CreatedAt))
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: ops})
	if err != nil {
		return entities.Budget{}, transactionError(err, map[int]error{
			1: &interfaces.UniqueConflictError{Scope: interfaces.ScopeBudgetLink, Value: b.CustomLink},
		})
	}
	return b, nil
}

// bumpClient moves the client counters atomically. The condition pins the
// owner so a budget can never touch another professional's client.
func (r *BudgetDynamoRepository) bumpClient(clientID, userID string, budgets int, spent float64, at time.Time) types.TransactWriteItem {
	expr := "ADD #total_budgets :budgets, #total_spent :spent SET #updated_at = :now"
	values := map[string]types.AttributeValue{
		":budgets": numberValue(float64(budgets)),
		":spent":   numberValue(spent),
		":now":     stringValue(formatTime(at)),
		":uid":     stringValue(userID),
	}
	names := map[string]string{
		"#id":            "id",
		"#user_id":       "user_id",
		"#total_budgets": "total_budgets",
		"#total_spent":   "total_spent",
		"#updated_at":    "updated_at",
	}
	if budgets > 0 {
		expr += ", #last_budget_date = :now"
		names["#last_budget_date"] = "last_budget_date"
	}
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(r.clientsTable),
		Key:                       idKey(clientID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #user_id = :uid"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var rec budgetRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetRecord(rec), nil
}

// GetByCustomLink resolves the link through its unique key, which is
// strongly consistent unlike a GSI.
func (r *BudgetDynamoRepository) GetByCustomLink(ctx context.Context, customLink string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.uniqueKeysTable),
		Key:            stringKey(uniqueKeyAttr, uniqueKey(interfaces.ScopeBudgetLink, customLink)),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}
	var key uniqueKeyItem
	if err := attributevalue.UnmarshalMap(out.Item, &key); err != nil {
		return entities.Budget{}, err
	}

	b, err := r.GetByID(ctx, key.OwnerID)
	if err != nil {
		return entities.Budget{}, err
	}
	if b.CustomLink != customLink {
		return entities.Budget{}, nil
	}
	return b, nil
}

// ListByUserID returns the user's budgets, newest first.
func (r *BudgetDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Budget, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(budgetsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": stringValue(userID),
		},
	})
	if err != nil {
		return nil, err
	}
	budgets, err := unmarshalAll(raw, fromBudgetRecord)
	if err != nil {
		return nil, err
	}
	// created_at strings are RFC3339Nano, which does not sort lexically
	// within a second.
	sort.SliceStable(budgets, func(i, j int) bool { return budgets[i].CreatedAt.After(budgets[j].CreatedAt) })
	return budgets, nil
}

func (r *BudgetDynamoRepository) UpdateRequest(ctx context.Context, id string, req entities.BudgetRequest) (entities.Budget, error) {
	reqAV, err := attributevalue.Marshal(req)
	if err != nil {
		return entities.Budget{}, err
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		return "SET #budget_request = :req, #updated_at = :updated_at",
			map[string]types.AttributeValue{
				":req":        reqAV,
				":updated_at": stringValue(now),
			},
			map[string]string{
				"#budget_request": "budget_request",
				"#updated_at":     "updated_at",
			}
	}, "")
}

func (r *BudgetDynamoRepository) ApplyResubmission(ctx context.Context, current entities.Budget, req entities.BudgetRequest, result entities.BudgetResult, at time.Time) (entities.Budget, error) {
	reqAV, err := attributevalue.Marshal(req)
	if err != nil {
		return entities.Budget{}, err
	}
	resAV, err := attributevalue.Marshal(result)
	if err != nil {
		return entities.Budget{}, err
	}

	values := map[string]types.AttributeValue{
		":req":        reqAV,
		":res":        resAV,
		":status":     stringValue(string(entities.BudgetStatusResubmitted)),
		":rejected":   stringValue(string(entities.BudgetStatusRejected)),
		":updated_at": stringValue(formatTime(at)),
	}
	names := map[string]string{
		"#id":                "id",
		"#budget_request":    "budget_request",
		"#budget_result":     "budget_result",
		"#status":            "status",
		"#updated_at":        "updated_at",
		"#rejection_date":    "rejection_date",
		"#rejection_comment": "rejection_comment",
	}
	expr := "SET #budget_request = :req, #budget_result = :res, #status = :status, #updated_at = :updated_at"
	newTotal, hasTotal := result.CalculatedTotal()
	if hasTotal {
		values[":total"] = numberValue(newTotal)
		names["#total"] = "total"
		names["#total_price"] = "total_price"
		expr += ", #total = :total, #total_price = :total"
	}
	expr += " REMOVE #rejection_date, #rejection_comment"

	ops := []types.TransactWriteItem{{Update: &types.Update{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(current.ID),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :rejected"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}}

	if delta := newTotal - current.RecordedTotal(); hasTotal && delta != 0 && current.ClientID != "" {
		ops = append(ops, r.bumpClient(current.ClientID, current.UserID, 0, delta, at))
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: ops}); err != nil {
		return entities.Budget{}, transactionError(err, map[int]error{0: interfaces.ErrPreconditionFailed})
	}
	return r.GetByID(ctx, current.ID)
}

func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, change interfaces.StatusChange) (entities.Budget, error) {
	at := formatTime(change.At)
	b, err := r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		values := map[string]types.AttributeValue{
			":status":     stringValue(string(change.To)),
			":updated_at": stringValue(at),
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		switch change.To {
		case entities.BudgetStatusApproved:
			expr += ", #approval_date = :at"
			values[":at"] = stringValue(at)
			names["#approval_date"] = "approval_date"
		case entities.BudgetStatusRejected:
			expr += ", #rejection_date = :at, #rejection_comment = :comment"
			values[":at"] = stringValue(at)
			values[":comment"] = stringValue(change.RejectionComment)
			names["#rejection_date"] = "rejection_date"
			names["#rejection_comment"] = "rejection_comment"
		}
		for i, from := range change.From {
			values[fmt.Sprintf(":from%d", i)] = stringValue(string(from))
		}
		return expr, values, names
	}, statusCondition(len(change.From)))
	if err != nil {
		return entities.Budget{}, err
	}
	if b.ID == "" {
		return entities.Budget{}, interfaces.ErrPreconditionFailed
	}
	return b, nil
}

func statusCondition(n int) string {
	if n == 0 {
		return ""
	}
	cond := "#status IN ("
	for i := 0; i < n; i++ {
		if i > 0 {
			cond += ", "
		}
		cond += fmt.Sprintf(":from%d", i)
	}
	return cond + ")"
}

// UpdateCustomLink claims the new link, releases the old one and points the
// budget at it in one transaction.
func (r *BudgetDynamoRepository) UpdateCustomLink(ctx context.Context, id, currentLink, newLink string) (entities.Budget, error) {
	now := r.now()
	claim, err := putUniqueKey(r.uniqueKeysTable, interfaces.ScopeBudgetLink, newLink, id, now)
	if err != nil {
		return entities.Budget{}, err
	}
	ops := []types.TransactWriteItem{
		claim,
		deleteUniqueKey(r.uniqueKeysTable, interfaces.ScopeBudgetLink, currentLink),
		{Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(id),
			UpdateExpression:    aws.String("SET #custom_link = :new, #updated_at = :now"),
			ConditionExpression: aws.String("attribute_exists(#id) AND #custom_link = :old"),
			ExpressionAttributeNames: map[string]string{
				"#id":          "id",
				"#custom_link": "custom_link",
				"#updated_at":  "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":new": stringValue(newLink),
				":old": stringValue(currentLink),
				":now": stringValue(formatTime(now)),
			},
		}},
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: ops}); err != nil {
		return entities.Budget{}, transactionError(err, map[int]error{
			0: &interfaces.UniqueConflictError{Scope: interfaces.ScopeBudgetLink, Value: newLink},
			2: interfaces.ErrPreconditionFailed,
		})
	}
	return r.GetByID(ctx, id)
}

// Delete removes the budget and its link key and gives back the client
// counters in one transaction.
func (r *BudgetDynamoRepository) Delete(ctx context.Context, b entities.Budget) error {
	ops := []types.TransactWriteItem{
		{Delete: &types.Delete{
			TableName:                aws.String(r.tableName),
			Key:                      idKey(b.ID),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		deleteUniqueKey(r.uniqueKeysTable, interfaces.ScopeBudgetLink, b.CustomLink),
	}
	if b.ClientID != "" {
		ops = append(ops, r.bumpClient(b.ClientID, b.UserID, -1, -b.RecordedTotal(), r.now()))
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: ops})
	if err != nil {
		return transactionError(err, map[int]error{0: interfaces.ErrPreconditionFailed})
	}
	return nil
}

func (r *BudgetDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
	extraCondition string,
) (entities.Budget, error) {
	now := formatTime(r.now())
	updateExpr, values, names := build(now)

	cond := "attribute_exists(#id)"
	if extraCondition != "" {
		cond += " AND " + extraCondition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var rec budgetRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetRecord(rec), nil
}

func amountToFloat(a *entities.Amount) *float64 {
	if a == nil {
		return nil
	}
	v := a.Float64()
	return &v
}

func floatToAmount(v *float64) *entities.Amount {
	if v == nil {
		return nil
	}
	return entities.AmountPtr(*v)
}

func toBudgetRecord(b entities.Budget) budgetRecord {
	return budgetRecord{
		ID:               b.ID,
		UserID:           b.UserID,
		ClientID:         b.ClientID,
		FormLinkID:       b.FormLinkID,
		Request:          b.Request,
		Result:           b.Result,
		Total:            amountToFloat(b.Total),
		TotalPrice:       amountToFloat(b.TotalPrice),
		Status:           string(b.Status),
		CustomLink:       b.CustomLink,
		CreatedAt:        formatTime(b.CreatedAt),
		UpdatedAt:        formatTime(b.UpdatedAt),
		ApprovalDate:     formatTimePtr(b.ApprovalDate),
		RejectionDate:    formatTimePtr(b.RejectionDate),
		RejectionComment: b.RejectionComment,
	}
}

func fromBudgetRecord(rec budgetRecord) entities.Budget {
	return entities.Budget{
		ID:               rec.ID,
		UserID:           rec.UserID,
		ClientID:         rec.ClientID,
		FormLinkID:       rec.FormLinkID,
		Request:          rec.Request,
		Result:           rec.Result,
		Total:            floatToAmount(rec.Total),
		TotalPrice:       floatToAmount(rec.TotalPrice),
		Status:           entities.BudgetStatus(rec.Status),
		CustomLink:       rec.CustomLink,
		CreatedAt:        parseTime(rec.CreatedAt),
		UpdatedAt:        parseTime(rec.UpdatedAt),
		ApprovalDate:     parseTimePtr(rec.ApprovalDate),
		RejectionDate:    parseTimePtr(rec.RejectionDate),
		RejectionComment: rec.RejectionComment,
	}
}
