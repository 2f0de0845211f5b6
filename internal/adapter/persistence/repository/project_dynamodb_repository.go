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

const defaultProjectsTableName = "projects"

// projectItem is the raw stored shape. Numeric and enum columns live as
// strings: rows imported from the spreadsheet era carry free-form values
// ("N/A" totals, "SOLD" statuses) that must degrade gracefully instead of
// failing unmarshalling. Normalization to the closed entity types happens in
// fromProjectItem.
type projectItem struct {
	ID          string `dynamodbav:"id"`
	Advisor     string `dynamodbav:"advisor"`
	QuoteNumber string `dynamodbav:"quote_number,omitempty"`
	QuoteDate   string `dynamodbav:"quote_date,omitempty"`
	InvoiceDate string `dynamodbav:"invoice_date,omitempty"`
	ProjectName string `dynamodbav:"project_name,omitempty"`
	ClientName  string `dynamodbav:"client_name,omitempty"`
	Status      string `dynamodbav:"status,omitempty"`
	Total       string `dynamodbav:"total,omitempty"`
	LossReason  string `dynamodbav:"loss_reason,omitempty"`
	Notes       string `dynamodbav:"notes,omitempty"`
	Date        string `dynamodbav:"date,omitempty"`
	CreatedAt   string `dynamodbav:"created_at,omitempty"`
	UpdatedAt   string `dynamodbav:"updated_at,omitempty"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	out := []entities.Project{}
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
			var it projectItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromProjectItem(it))
		}
		if res.LastEvaluatedKey == nil {
			return out, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:          p.ID,
		Advisor:     p.Advisor,
		QuoteNumber: p.QuoteNumber,
		QuoteDate:   p.QuoteDate,
		InvoiceDate: p.InvoiceDate,
		ProjectName: p.ProjectName,
		ClientName:  p.ClientName,
		Status:      string(p.Status),
		Total:       floatToString(p.Total),
		LossReason:  string(p.LossReason),
		Notes:       p.Notes,
		Date:        p.Date,
		CreatedAt:   timestampToString(p.CreatedAt),
		UpdatedAt:   timestampToString(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:          it.ID,
		Advisor:     it.Advisor,
		QuoteNumber: it.QuoteNumber,
		QuoteDate:   it.QuoteDate,
		InvoiceDate: it.InvoiceDate,
		ProjectName: it.ProjectName,
		ClientName:  it.ClientName,
		Status:      entities.NormalizeProjectStatus(it.Status),
		Total:       parseOptionalFloat(it.Total),
		LossReason:  entities.NormalizeLossReason(it.LossReason),
		Notes:       it.Notes,
		Date:        it.Date,
		CreatedAt:   timestampFromString(it.CreatedAt),
		UpdatedAt:   timestampFromString(it.UpdatedAt),
	}
}
