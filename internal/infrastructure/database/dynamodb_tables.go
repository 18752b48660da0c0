package database

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Secondary indexes the repositories query through.
const (
	SlugIndex     = "slug-index"
	ConfigIDIndex = "config_id-index"
)

// TableNames holds the DynamoDB table of every collection.
type TableNames struct {
	Configs string
	Options string
	Regions string
	Leads   string
}

func TableNamesFromEnv() TableNames {
	return TableNames{
		Configs: getenvDefault("CONFIGS_TABLE", "calculator_configs"),
		Options: getenvDefault("OPTIONS_TABLE", "calculator_options"),
		Regions: getenvDefault("REGIONS_TABLE", "calculator_regions"),
		Leads:   getenvDefault("LEADS_TABLE", "leads"),
	}
}

type tableCreator interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureDynamoTables creates any missing table with its index. Used against
// DynamoDB Local; production tables are provisioned outside the service.
func EnsureDynamoTables(ctx context.Context, client tableCreator, names TableNames) error {
	for _, in := range tableDefinitions(names) {
		_, err := client.CreateTable(ctx, in)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Printf("[store][dynamodb] table created name=%s", aws.ToString(in.TableName))
		case errors.As(err, &inUse):
		default:
			return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
	}
	return nil
}

func tableDefinitions(names TableNames) []*dynamodb.CreateTableInput {
	withIndex := func(table, attr, index string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(table),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{{
				IndexName:  aws.String(index),
				KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}},
		}
	}
	plain := func(table string) *dynamodb.CreateTableInput {
		return &dynamodb.CreateTableInput{
			TableName:   aws.String(table),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
		}
	}

	return []*dynamodb.CreateTableInput{
		withIndex(names.Configs, "slug", SlugIndex),
		withIndex(names.Options, "config_id", ConfigIDIndex),
		plain(names.Regions),
		plain(names.Leads),
	}
}
