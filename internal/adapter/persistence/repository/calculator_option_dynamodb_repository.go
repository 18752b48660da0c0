package repository

import (
	"context"
	"time"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/infrastructure/database"
	"construction_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type optionItem struct {
	ID          string  `dynamodbav:"id"`
	ConfigID    string  `dynamodbav:"config_id"`
	Name        string  `dynamodbav:"name"`
	AddPriceMin float64 `dynamodbav:"add_price_min"`
	AddPriceMax float64 `dynamodbav:"add_price_max"`
	SortOrder   int     `dynamodbav:"sort_order"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// CalculatorOptionDynamoRepository stores options in calculator_options.
//
// Table requirements:
//   - PK: id (string)
//   - GSI config_id-index: PK config_id (string)

type CalculatorOptionDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICalculatorOptionRepository = (*CalculatorOptionDynamoRepository)(nil)

func NewCalculatorOptionDynamoRepository(ddb dynamoAPI, tables database.TableNames) *CalculatorOptionDynamoRepository {
	return &CalculatorOptionDynamoRepository{ddb: ddb, tableName: tables.Options}
}

func (r *CalculatorOptionDynamoRepository) List(ctx context.Context) ([]entities.CalculatorOption, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return optionsFromItems(items)
}

func (r *CalculatorOptionDynamoRepository) ListByConfigID(ctx context.Context, configID string) ([]entities.CalculatorOption, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(database.ConfigIDIndex),
		KeyConditionExpression:   aws.String("#config_id = :config_id"),
		ExpressionAttributeNames: map[string]string{"#config_id": "config_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":config_id": &types.AttributeValueMemberS{Value: configID},
		},
	})
	if err != nil {
		return nil, err
	}
	return optionsFromItems(items)
}

func (r *CalculatorOptionDynamoRepository) GetByID(ctx context.Context, id string) (entities.CalculatorOption, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(item) == 0 {
		return entities.CalculatorOption{}, err
	}
	var it optionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.CalculatorOption{}, err
	}
	return fromOptionItem(it), nil
}

func (r *CalculatorOptionDynamoRepository) Create(ctx context.Context, o entities.CalculatorOption) (entities.CalculatorOption, error) {
	av, err := attributevalue.MarshalMap(toOptionItem(o))
	if err != nil {
		return entities.CalculatorOption{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.CalculatorOption{}, err
	}
	return o, nil
}

func (r *CalculatorOptionDynamoRepository) Update(ctx context.Context, o entities.CalculatorOption) (entities.CalculatorOption, error) {
	av, err := attributevalue.MarshalMap(toOptionItem(o))
	if err != nil {
		return entities.CalculatorOption{}, err
	}
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.CalculatorOption{}, err
	}
	return o, nil
}

func (r *CalculatorOptionDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func optionsFromItems(items []map[string]types.AttributeValue) ([]entities.CalculatorOption, error) {
	var raw []optionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	options := make([]entities.CalculatorOption, 0, len(raw))
	for _, it := range raw {
		options = append(options, fromOptionItem(it))
	}
	sortByOrder(options, func(o entities.CalculatorOption) (int, time.Time, string) {
		return o.SortOrder, o.CreatedAt, o.ID
	})
	return options, nil
}

func toOptionItem(o entities.CalculatorOption) optionItem {
	return optionItem{
		ID:          o.ID,
		ConfigID:    o.ConfigID,
		Name:        o.Name,
		AddPriceMin: o.AddPriceMin,
		AddPriceMax: o.AddPriceMax,
		SortOrder:   o.SortOrder,
		CreatedAt:   formatTime(o.CreatedAt),
		UpdatedAt:   formatTime(o.UpdatedAt),
	}
}

func fromOptionItem(it optionItem) entities.CalculatorOption {
	return entities.CalculatorOption{
		ID:          it.ID,
		ConfigID:    it.ConfigID,
		Name:        it.Name,
		AddPriceMin: it.AddPriceMin,
		AddPriceMax: it.AddPriceMax,
		SortOrder:   it.SortOrder,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
