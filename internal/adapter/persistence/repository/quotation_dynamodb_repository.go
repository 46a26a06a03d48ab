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

const DefaultQuotationsTableName = "quotations"

type quotationLineItem struct {
	Room        string `dynamodbav:"room"`
	Item        string `dynamodbav:"item"`
	Size        string `dynamodbav:"size"`
	Price       string `dynamodbav:"price"`
	Description string `dynamodbav:"description"`
	IsCustom    bool   `dynamodbav:"is_custom"`
}

type quotationItem struct {
	ID           string              `dynamodbav:"id"`
	FormID       string              `dynamodbav:"form_id"`
	DwellingSize string              `dynamodbav:"dwelling_size"`
	FinishType   string              `dynamodbav:"finish_type"`
	CoreType     string              `dynamodbav:"core_type"`
	CarpetArea   string              `dynamodbav:"carpet_area"`
	CustomerName string              `dynamodbav:"customer_name,omitempty"`
	LineItems    []quotationLineItem `dynamodbav:"line_items"`
	TotalCost    string              `dynamodbav:"total_cost"`
	CreatedAt    string              `dynamodbav:"created_at"`
	ValidUntil   string              `dynamodbav:"valid_until"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Records are written once. Expiry is decided by the reader from
// valid_until; an optional table TTL on that attribute only handles cleanup.
type QuotationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotationDynamoRepository {
	return newQuotationDynamoRepository(ddb, tableName)
}

func newQuotationDynamoRepository(ddb dynamoAPI, tableName string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, DefaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	lines := make([]quotationLineItem, 0, len(q.LineItems))
	for _, li := range q.LineItems {
		lines = append(lines, quotationLineItem{
			Room:        li.Room,
			Item:        li.ItemName,
			Size:        li.SizeLabel,
			Price:       li.Price.String(),
			Description: li.Description,
			IsCustom:    li.IsCustom,
		})
	}
	return quotationItem{
		ID:           q.ID,
		FormID:       q.FormID,
		DwellingSize: q.DwellingSize,
		FinishType:   q.FinishType,
		CoreType:     q.CoreType,
		CarpetArea:   floatToString(q.CarpetArea),
		CustomerName: q.CustomerName,
		LineItems:    lines,
		TotalCost:    q.TotalCost.String(),
		CreatedAt:    timeToString(q.CreatedAt),
		ValidUntil:   timeToString(q.ValidUntil),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	lines := make([]entities.QuotationLineItem, 0, len(it.LineItems))
	for _, li := range it.LineItems {
		lines = append(lines, entities.QuotationLineItem{
			Room:        li.Room,
			ItemName:    li.Item,
			SizeLabel:   li.Size,
			Price:       parseDecimal(li.Price),
			Description: li.Description,
			IsCustom:    li.IsCustom,
		})
	}
	return entities.Quotation{
		ID:           it.ID,
		FormID:       it.FormID,
		DwellingSize: it.DwellingSize,
		FinishType:   it.FinishType,
		CoreType:     it.CoreType,
		CarpetArea:   parseFloat(it.CarpetArea),
		CustomerName: it.CustomerName,
		LineItems:    lines,
		TotalCost:    parseDecimal(it.TotalCost),
		CreatedAt:    parseTime(it.CreatedAt),
		ValidUntil:   parseTime(it.ValidUntil),
	}
}
