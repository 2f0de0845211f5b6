package repository

import (
	"context"
	"errors"
	"strconv"

	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTargetsTableName = "targets"

// Month, year and quota live as strings so sheet-imported rows with stray
// values unmarshal cleanly; parseIntOr0 / parseOptionalFloat absorb the mess.
type targetItem struct {
	ID          string `dynamodbav:"id"`
	Advisor     string `dynamodbav:"advisor"`
	Month       string `dynamodbav:"month,omitempty"`
	Year        string `dynamodbav:"year,omitempty"`
	QuotaAmount string `dynamodbav:"quota_amount,omitempty"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

// TargetDynamoRepository persists Target entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TargetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITargetRepository = (*TargetDynamoRepository)(nil)

func NewTargetDynamoRepository(ddb *dynamodb.Client) *TargetDynamoRepository {
	return &TargetDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TARGETS_TABLE", defaultTargetsTableName),
	}
}

func (r *TargetDynamoRepository) List(ctx context.Context) ([]entities.Target, error) {
	out := []entities.Target{}
	var startKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range res.Items {
			var it targetItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromTargetItem(it))
		}
		if res.LastEvaluatedKey == nil {
			return out, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

func (r *TargetDynamoRepository) Create(ctx context.Context, t entities.Target) (entities.Target, error) {
	av, err := attributevalue.MarshalMap(toTargetItem(t))
	if err != nil {
		return entities.Target{}, err
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
		return entities.Target{}, err
	}
	return t, nil
}

func (r *TargetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Target, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Target{}, err
	}
	if len(out.Item) == 0 {
		return entities.Target{}, nil
	}

	var it targetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Target{}, err
	}
	return fromTargetItem(it), nil
}

func (r *TargetDynamoRepository) Update(ctx context.Context, t entities.Target) (entities.Target, error) {
	av, err := attributevalue.MarshalMap(toTargetItem(t))
	if err != nil {
		return entities.Target{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Target{}, nil
		}
		return entities.Target{}, err
	}
	return t, nil
}

func (r *TargetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toTargetItem(t entities.Target) targetItem {
	return targetItem{
		ID:          t.ID,
		Advisor:     t.Advisor,
		Month:       strconv.Itoa(t.Month),
		Year:        strconv.Itoa(t.Year),
		QuotaAmount: floatToString(t.QuotaAmount),
		CreatedAt:   timestampToString(t.CreatedAt),
		UpdatedAt:   timestampToString(t.UpdatedAt),
	}
}

func fromTargetItem(it targetItem) entities.Target {
	return entities.Target{
		ID:          it.ID,
		Advisor:     it.Advisor,
		Month:       parseIntOr0(it.Month),
		Year:        parseIntOr0(it.Year),
		QuotaAmount: parseOptionalFloat(it.QuotaAmount),
		CreatedAt:   timestampFromString(it.CreatedAt),
		UpdatedAt:   timestampFromString(it.UpdatedAt),
	}
}
