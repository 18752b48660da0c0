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

type regionItem struct {
	ID          string  `dynamodbav:"id"`
	Region      string  `dynamodbav:"region"`
	Coefficient float64 `dynamodbav:"coefficient"`
	SortOrder   int     `dynamodbav:"sort_order"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

type RegionModifierDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRegionModifierRepository = (*RegionModifierDynamoRepository)(nil)

func NewRegionModifierDynamoRepository(ddb dynamoAPI, tables database.TableNames) *RegionModifierDynamoRepository {
	return &RegionModifierDynamoRepository{ddb: ddb, tableName: tables.Regions}
}

func (r *RegionModifierDynamoRepository) List(ctx context.Context) ([]entities.RegionModifier, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return regionsFromItems(items)
}

func (r *RegionModifierDynamoRepository) GetByID(ctx context.Context, id string) (entities.RegionModifier, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(item) == 0 {
		return entities.RegionModifier{}, err
	}
	var it regionItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.RegionModifier{}, err
	}
	return fromRegionItem(it), nil
}

func (r *RegionModifierDynamoRepository) Create(ctx context.Context, m entities.RegionModifier) (entities.RegionModifier, error) {
	av, err := attributevalue.MarshalMap(toRegionItem(m))
	if err != nil {
		return entities.RegionModifier{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.RegionModifier{}, err
	}
	return m, nil
}

func (r *RegionModifierDynamoRepository) Update(ctx context.Context, m entities.RegionModifier) (entities.RegionModifier, error) {
	av, err := attributevalue.MarshalMap(toRegionItem(m))
	if err != nil {
		return entities.RegionModifier{}, err
	}
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.RegionModifier{}, err
	}
	return m, nil
}

func (r *RegionModifierDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func regionsFromItems(items []map[string]types.AttributeValue) ([]entities.RegionModifier, error) {
	var raw []regionItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	regions := make([]entities.RegionModifier, 0, len(raw))
	for _, it := range raw {
		regions = append(regions, fromRegionItem(it))
	}
	sortByOrder(regions, func(m entities.RegionModifier) (int, time.Time, string) {
		return m.SortOrder, m.CreatedAt, m.ID
	})
	return regions, nil
}

func toRegionItem(m entities.RegionModifier) regionItem {
	return regionItem{
		ID:          m.ID,
		Region:      m.Region,
		Coefficient: m.Coefficient,
		SortOrder:   m.SortOrder,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func fromRegionItem(it regionItem) entities.RegionModifier {
	return entities.RegionModifier{
		ID:          it.ID,
		Region:      it.Region,
		Coefficient: it.Coefficient,
		SortOrder:   it.SortOrder,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
