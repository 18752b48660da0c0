package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/infrastructure/database"
	"construction_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit on actions per TransactWriteItems call.
const maxTransactItems = 100

type configItem struct {
	ID               string  `dynamodbav:"id"`
	Slug             string  `dynamodbav:"slug"`
	BuildingType     string  `dynamodbav:"building_type"`
	BasePriceMin     float64 `dynamodbav:"base_price_min"`
	BasePriceMax     float64 `dynamodbav:"base_price_max"`
	DurationMinWeeks int     `dynamodbav:"duration_min_weeks"`
	DurationMaxWeeks int     `dynamodbav:"duration_max_weeks"`
	Notes            *string `dynamodbav:"notes,omitempty"`
	IsPublished      bool    `dynamodbav:"is_published"`
	SortOrder        int     `dynamodbav:"sort_order"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// BuildingTypeConfigDynamoRepository stores configs in calculator_configs.
//
// Table requirements:
//   - PK: id (string)
//   - GSI slug-index: PK slug (string)
//
// Delete also removes the config's rows from the options table.

type BuildingTypeConfigDynamoRepository struct {
	ddb          dynamoAPI
	tableName    string
	optionsTable string
}

var _ interfaces.IBuildingTypeConfigRepository = (*BuildingTypeConfigDynamoRepository)(nil)

func NewBuildingTypeConfigDynamoRepository(ddb dynamoAPI, tables database.TableNames) *BuildingTypeConfigDynamoRepository {
	return &BuildingTypeConfigDynamoRepository{
		ddb:          ddb,
		tableName:    tables.Configs,
		optionsTable: tables.Options,
	}
}

func (r *BuildingTypeConfigDynamoRepository) List(ctx context.Context, publishedOnly bool) ([]entities.BuildingTypeConfig, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if publishedOnly {
		applyPublishedFilter(&in.FilterExpression, &in.ExpressionAttributeNames, &in.ExpressionAttributeValues)
	}

	items, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return configsFromItems(items)
}

func (r *BuildingTypeConfigDynamoRepository) GetByID(ctx context.Context, id string) (entities.BuildingTypeConfig, error) {
	item, err := getByID(ctx, r.ddb, r.tableName, id)
	if err != nil || len(item) == 0 {
		return entities.BuildingTypeConfig{}, err
	}
	var it configItem
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	return fromConfigItem(it), nil
}

func (r *BuildingTypeConfigDynamoRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (entities.BuildingTypeConfig, error) {
	in := &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(database.SlugIndex),
		KeyConditionExpression:   aws.String("#slug = :slug"),
		ExpressionAttributeNames: map[string]string{"#slug": "slug"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
	}
	if publishedOnly {
		applyPublishedFilter(&in.FilterExpression, &in.ExpressionAttributeNames, &in.ExpressionAttributeValues)
	}

	items, err := queryAll(ctx, r.ddb, in)
	if err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	configs, err := configsFromItems(items)
	if err != nil || len(configs) == 0 {
		return entities.BuildingTypeConfig{}, err
	}
	if len(configs) > 1 {
		log.Printf("[store][dynamodb] duplicate slug slug=%s count=%d", slug, len(configs))
	}
	return configs[0], nil
}

func (r *BuildingTypeConfigDynamoRepository) Create(ctx context.Context, c entities.BuildingTypeConfig) (entities.BuildingTypeConfig, error) {
	av, err := attributevalue.MarshalMap(toConfigItem(c))
	if err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	return c, nil
}

func (r *BuildingTypeConfigDynamoRepository) Update(ctx context.Context, c entities.BuildingTypeConfig) (entities.BuildingTypeConfig, error) {
	av, err := attributevalue.MarshalMap(toConfigItem(c))
	if err != nil {
		return entities.BuildingTypeConfig{}, err
	}
	ok, err := replaceExisting(ctx, r.ddb, r.tableName, av)
	if err != nil || !ok {
		return entities.BuildingTypeConfig{}, err
	}
	return c, nil
}

// Delete removes the config and its options. Options are deleted in
// transactions of up to 100 actions; the config itself goes in the last one,
// so a failed run leaves it in place and can be retried.
//
// DynamoDB has no foreign keys: an option written concurrently after the ID
// listing would survive the cascade. The index is queried once more after the
// config is gone and any late options are removed. An option created after
// that sweep is still possible and stays orphaned (last write wins); public
// reads never reach it because they go through the config.
func (r *BuildingTypeConfigDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil || existing.ID == "" {
		return false, err
	}

	optionIDs, err := r.optionIDs(ctx, id)
	if err != nil {
		return false, err
	}

	for _, batch := range cascadeBatches(r.tableName, r.optionsTable, id, optionIDs) {
		_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: batch})
		if err != nil {
			return false, fmt.Errorf("delete config %s: %w", id, err)
		}
	}

	late, err := r.sweepOptions(ctx, id)
	if err != nil {
		// The config is already gone; the leftovers are unreachable.
		log.Printf("[store][dynamodb] option sweep failed config_id=%s err=%v", id, err)
	}
	log.Printf("[store][dynamodb] config deleted id=%s options=%d late=%d", id, len(optionIDs), late)
	return true, nil
}

// sweepOptions deletes options that reference configID after the config itself was removed.
func (r *BuildingTypeConfigDynamoRepository) sweepOptions(ctx context.Context, configID string) (int, error) {
	ids, err := r.optionIDs(ctx, configID)
	if err != nil || len(ids) == 0 {
		return 0, err
	}
	for start := 0; start < len(ids); start += maxTransactItems {
		end := min(start+maxTransactItems, len(ids))
		batch := make([]types.TransactWriteItem, 0, end-start)
		for _, optID := range ids[start:end] {
			batch = append(batch, types.TransactWriteItem{
				Delete: &types.Delete{TableName: aws.String(r.optionsTable), Key: idKey(optID)},
			})
		}
		if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: batch}); err != nil {
			return start, err
		}
	}
	return len(ids), nil
}

func (r *BuildingTypeConfigDynamoRepository) optionIDs(ctx context.Context, configID string) ([]string, error) {
	items, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.optionsTable),
		IndexName:                aws.String(database.ConfigIDIndex),
		KeyConditionExpression:   aws.String("#config_id = :config_id"),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#config_id": "config_id", "#id": "id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":config_id": &types.AttributeValueMemberS{Value: configID},
		},
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		var it struct {
			ID string `dynamodbav:"id"`
		}
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		ids = append(ids, it.ID)
	}
	return ids, nil
}

// cascadeBatches splits the option deletions into transactions and appends the
// config deletion to the final one.
func cascadeBatches(configsTable, optionsTable, configID string, optionIDs []string) [][]types.TransactWriteItem {
	del := func(table, id string) types.TransactWriteItem {
		return types.TransactWriteItem{Delete: &types.Delete{TableName: aws.String(table), Key: idKey(id)}}
	}

	var batches [][]types.TransactWriteItem
	current := make([]types.TransactWriteItem, 0, maxTransactItems)
	for _, optID := range optionIDs {
		if len(current) == maxTransactItems {
			batches = append(batches, current)
			current = make([]types.TransactWriteItem, 0, maxTransactItems)
		}
		current = append(current, del(optionsTable, optID))
	}
	if len(current) == maxTransactItems {
		batches = append(batches, current)
		current = make([]types.TransactWriteItem, 0, 1)
	}
	current = append(current, del(configsTable, configID))
	return append(batches, current)
}

func applyPublishedFilter(expr **string, names *map[string]string, values *map[string]types.AttributeValue) {
	*expr = aws.String("#is_published = :published")
	if *names == nil {
		*names = map[string]string{}
	}
	if *values == nil {
		*values = map[string]types.AttributeValue{}
	}
	(*names)["#is_published"] = "is_published"
	(*values)[":published"] = &types.AttributeValueMemberBOOL{Value: true}
}

func configsFromItems(items []map[string]types.AttributeValue) ([]entities.BuildingTypeConfig, error) {
	var raw []configItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	configs := make([]entities.BuildingTypeConfig, 0, len(raw))
	for _, it := range raw {
		configs = append(configs, fromConfigItem(it))
	}
	sortByOrder(configs, func(c entities.BuildingTypeConfig) (int, time.Time, string) {
		return c.SortOrder, c.CreatedAt, c.ID
	})
	return configs, nil
}

func toConfigItem(c entities.BuildingTypeConfig) configItem {
	return configItem{
		ID:               c.ID,
		Slug:             c.Slug,
		BuildingType:     c.BuildingType,
		BasePriceMin:     c.BasePriceMin,
		BasePriceMax:     c.BasePriceMax,
		DurationMinWeeks: c.DurationMinWeeks,
		DurationMaxWeeks: c.DurationMaxWeeks,
		Notes:            c.Notes,
		IsPublished:      c.IsPublished,
		SortOrder:        c.SortOrder,
		CreatedAt:        formatTime(c.CreatedAt),
		UpdatedAt:        formatTime(c.UpdatedAt),
	}
}

func fromConfigItem(it configItem) entities.BuildingTypeConfig {
	return entities.BuildingTypeConfig{
		ID:               it.ID,
		Slug:             it.Slug,
		BuildingType:     it.BuildingType,
		BasePriceMin:     it.BasePriceMin,
		BasePriceMax:     it.BasePriceMax,
		DurationMinWeeks: it.DurationMinWeeks,
		DurationMaxWeeks: it.DurationMaxWeeks,
		Notes:            it.Notes,
		IsPublished:      it.IsPublished,
		SortOrder:        it.SortOrder,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
