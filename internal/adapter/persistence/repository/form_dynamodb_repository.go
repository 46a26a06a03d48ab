package repository

import (
	"context"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultFormsTableName = "forms"

type formItem struct {
	ID           string              `dynamodbav:"id"`
	VisitorKey   string              `dynamodbav:"visitor_key,omitempty"`
	DwellingSize string              `dynamodbav:"dwelling_size"`
	Selections   map[string][]string `dynamodbav:"selections"`
	CarpetArea   string              `dynamodbav:"carpet_area,omitempty"`
	Name         string              `dynamodbav:"name"`
	Email        string              `dynamodbav:"email"`
	PhoneNumber  string              `dynamodbav:"phone_number"`
	PropertyName string              `dynamodbav:"property_name"`
	PayloadRaw   string              `dynamodbav:"payload_raw,omitempty"`
	CreatedAt    string              `dynamodbav:"created_at"`
}

// FormDynamoRepository persists raw submissions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type FormDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IFormRepository = (*FormDynamoRepository)(nil)

func NewFormDynamoRepository(ddb *dynamodb.Client, tableName string) *FormDynamoRepository {
	return newFormDynamoRepository(ddb, tableName)
}

func newFormDynamoRepository(ddb dynamoAPI, tableName string) *FormDynamoRepository {
	return &FormDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultFormsTableName),
	}
}

func (r *FormDynamoRepository) Create(ctx context.Context, f entities.Form) (entities.Form, error) {
	av, err := attributevalue.MarshalMap(toFormItem(f))
	if err != nil {
		return entities.Form{}, err
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
		return entities.Form{}, err
	}
	return f, nil
}

func (r *FormDynamoRepository) GetByID(ctx context.Context, id string) (entities.Form, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Form{}, err
	}
	if len(out.Item) == 0 {
		return entities.Form{}, nil
	}

	var it formItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Form{}, err
	}
	return fromFormItem(it), nil
}

func toFormItem(f entities.Form) formItem {
	selections := f.Selections
	if selections == nil {
		selections = map[string][]string{}
	}
	return formItem{
		ID:           f.ID,
		VisitorKey:   f.VisitorKey,
		DwellingSize: f.DwellingSize,
		Selections:   selections,
		CarpetArea:   f.CarpetArea,
		Name:         f.Contact.Name,
		Email:        f.Contact.Email,
		PhoneNumber:  f.Contact.PhoneNumber,
		PropertyName: f.Contact.PropertyName,
		PayloadRaw:   string(f.PayloadRaw),
		CreatedAt:    timeToString(f.CreatedAt),
	}
}

func fromFormItem(it formItem) entities.Form {
	f := entities.Form{
		ID:           it.ID,
		VisitorKey:   it.VisitorKey,
		DwellingSize: it.DwellingSize,
		Selections:   it.Selections,
		CarpetArea:   it.CarpetArea,
		Contact: entities.Contact{
			Name:         it.Name,
			Email:        it.Email,
			PhoneNumber:  it.PhoneNumber,
			PropertyName: it.PropertyName,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
	if it.PayloadRaw != "" {
		f.PayloadRaw = []byte(it.PayloadRaw)
	}
	return f
}
