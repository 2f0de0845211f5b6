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

const defaultAppointmentsTableName = "appointments"

// Dates stay as the raw stored strings end to end; parsing belongs to the
// metrics engine, where an unparsable value means "no date" rather than an
// error.
type appointmentItem struct {
	ID              string `dynamodbav:"id"`
	Advisor         string `dynamodbav:"advisor"`
	Date            string `dynamodbav:"date,omitempty"`
	ProspectName    string `dynamodbav:"prospect_name,omitempty"`
	BusinessType    string `dynamodbav:"business_type,omitempty"`
	NextAction      string `dynamodbav:"next_action,omitempty"`
	LastContactDate string `dynamodbav:"last_contact_date,omitempty"`
	CreatedAt       string `dynamodbav:"created_at,omitempty"`
	UpdatedAt       string `dynamodbav:"updated_at,omitempty"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	out := []entities.Appointment{}
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
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromAppointmentItem(it))
		}
		if res.LastEvaluatedKey == nil {
			return out, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:              a.ID,
		Advisor:         a.Advisor,
		Date:            a.Date,
		ProspectName:    a.ProspectName,
		BusinessType:    a.BusinessType,
		NextAction:      a.NextAction,
		LastContactDate: a.LastContactDate,
		CreatedAt:       timestampToString(a.CreatedAt),
		UpdatedAt:       timestampToString(a.UpdatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:              it.ID,
		Advisor:         it.Advisor,
		Date:            it.Date,
		ProspectName:    it.ProspectName,
		BusinessType:    it.BusinessType,
		NextAction:      it.NextAction,
		LastContactDate: it.LastContactDate,
		CreatedAt:       timestampFromString(it.CreatedAt),
		UpdatedAt:       timestampFromString(it.UpdatedAt),
	}
}
