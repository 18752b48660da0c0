package repository

import (
	"context"
	"sort"

	"construction_quote/internal/domain/entities"
	"construction_quote/internal/infrastructure/database"
	"construction_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type leadItem struct {
	ID                string  `dynamodbav:"id"`
	Name              string  `dynamodbav:"name"`
	Phone             string  `dynamodbav:"phone"`
	Email             *string `dynamodbav:"email,omitempty"`
	BuildingType      *string `dynamodbav:"building_type,omitempty"`
	AreaM2            *int    `dynamodbav:"area_m2,omitempty"`
	Region            *string `dynamodbav:"region,omitempty"`
	Message           *string `dynamodbav:"message,omitempty"`
	MeetingPreference *string `dynamodbav:"meeting_preference,omitempty"`
	Source            string  `dynamodbav:"source"`
	Status            string  `dynamodbav:"status"`
	CreatedAt         string  `dynamodbav:"created_at"`
}

// LeadDynamoRepository is the lead sink. Create is a single conditional put
// keyed by a fresh UUID, so resubmitting the form stores a second lead.

type LeadDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb dynamoAPI, tables database.TableNames) *LeadDynamoRepository {
	return &LeadDynamoRepository{ddb: ddb, tableName: tables.Leads}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
	}
	if err := putNew(ctx, r.ddb, r.tableName, av); err != nil {
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	items, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	var raw []leadItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, err
	}
	leads := make([]entities.Lead, 0, len(raw))
	for _, it := range raw {
		leads = append(leads, fromLeadItem(it))
	}
	sortNewestFirst(leads)
	return leads, nil
}

func (r *LeadDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Lead, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func sortNewestFirst(leads []entities.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:                l.ID,
		Name:              l.Name,
		Phone:             l.Phone,
		Email:             l.Email,
		BuildingType:      l.BuildingType,
		AreaM2:            l.AreaM2,
		Region:            l.Region,
		Message:           l.Message,
		MeetingPreference: l.MeetingPreference,
		Source:            string(l.Source),
		Status:            string(l.Status),
		CreatedAt:         formatTime(l.CreatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:                it.ID,
		Name:              it.Name,
		Phone:             it.Phone,
		Email:             it.Email,
		BuildingType:      it.BuildingType,
		AreaM2:            it.AreaM2,
		Region:            it.Region,
		Message:           it.Message,
		MeetingPreference: it.MeetingPreference,
		Source:            entities.LeadSource(it.Source),
		Status:            entities.LeadStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
