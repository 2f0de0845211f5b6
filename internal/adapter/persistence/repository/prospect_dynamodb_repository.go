package repository

import (
	"context"
	"errors"

	"crm_ventas/internal/domain/entities"
	"crm_ventas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProspectsTableName = "prospects"

type prospectItem struct {
	ID           string `dynamodbav:"id"`
	Advisor      string `dynamodbav:"advisor"`
	Date         string `dynamodbav:"date,omitempty"`
	ProspectName string `dynamodbav:"prospect_name,omitempty"`
	DealType     string `dynamodbav:"deal_type,omitempty"`
	Action       string `dynamodbav:"action,omitempty"`
	CreatedAt    string `dynamodbav:"created_at,omitempty"`
	UpdatedAt    string `dynamodbav:"updated_at,omitempty"`
}

// ProspectDynamoRepository persists Prospect entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProspectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProspectRepository = (*ProspectDynamoRepository)(nil)

func NewProspectDynamoRepository(ddb *dynamodb.Client) *ProspectDynamoRepository {
	return &ProspectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROSPECTS_TABLE", defaultProspectsTableName),
	}
}

func (r *ProspectDynamoRepository) List(ctx context.Context) ([]entities.Prospect, error) {
	out := []entities.Prospect{}
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
			var it prospectItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromProspectItem(it))
		}
		if res.LastEvaluatedKey == nil {
			return out, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

func (r *ProspectDynamoRepository) Create(ctx context.Context, p entities.Prospect) (entities.Prospect, error) {
	av, err := attributevalue.MarshalMap(toProspectItem(p))
	if err != nil {
		return entities.Prospect{}, err
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
		return entities.Prospect{}, err
	}
	return p, nil
}

func (r *ProspectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Prospect, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Prospect{}, err
	}
	if len(out.Item) == 0 {
		return entities.Prospect{}, nil
	}

	var it prospectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Prospect{}, err
	}
	return fromProspectItem(it), nil
}

func (r *ProspectDynamoRepository) Update(ctx context.Context, p entities.Prospect) (entities.Prospect, error) {
	av, err := attributevalue.MarshalMap(toProspectItem(p))
	if err != nil {
		return entities.Prospect{}, err
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
			return entities.Prospect{}, nil
		}
		return entities.Prospect{}, err
	}
	return p, nil
}

func (r *ProspectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProspectItem(p entities.Prospect) prospectItem {
	return prospectItem{
		ID:           p.ID,
		Advisor:      p.Advisor,
		Date:         p.Date,
		ProspectName: p.ProspectName,
		DealType:     string(p.DealType),
		Action:       p.Action,
		CreatedAt:    timestampToString(p.CreatedAt),
		UpdatedAt:    timestampToString(p.UpdatedAt),
	}
}

func fromProspectItem(it prospectItem) entities.Prospect {
	return entities.Prospect{
		ID:           it.ID,
		Advisor:      it.Advisor,
		Date:         it.Date,
		ProspectName: it.ProspectName,
		DealType:     entities.NormalizeDealType(it.DealType),
		Action:       it.Action,
		CreatedAt:    timestampFromString(it.CreatedAt),
		UpdatedAt:    timestampFromString(it.UpdatedAt),
	}
}
