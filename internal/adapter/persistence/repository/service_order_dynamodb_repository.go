package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"os_service_api/internal/domain/entities"
	"os_service_api/internal/domain/valueobjects"
	"os_service_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceOrdersTableName = "service_orders"

type includedServiceItem struct {
	ID                string `dynamodbav:"id"`
	OriginalServiceID string `dynamodbav:"original_service_id"`
	Name              string `dynamodbav:"name"`
	UnitPrice         string `dynamodbav:"unit_price"`
}

type includedStockItem struct {
	ID                  string `dynamodbav:"id"`
	OriginalStockItemID string `dynamodbav:"original_stock_item_id"`
	Name                string `dynamodbav:"name"`
	ItemType            string `dynamodbav:"item_type"`
	Quantity            int    `dynamodbav:"quantity"`
	UnitPrice           string `dynamodbav:"unit_price"`
}

type budgetItem struct {
	ID         string `dynamodbav:"id"`
	CreatedAt  string `dynamodbav:"created_at"`
	TotalPrice string `dynamodbav:"total_price"`
}

type serviceOrderItem struct {
	ID                 string                `dynamodbav:"id"`
	Code               string                `dynamodbav:"code"`
	VehicleID          string                `dynamodbav:"vehicle_id"`
	Status             string                `dynamodbav:"status"`
	CreatedAt          string                `dynamodbav:"created_at"`
	ExecutionStartedAt string                `dynamodbav:"execution_started_at,omitempty"`
	FinalizedAt        string                `dynamodbav:"finalized_at,omitempty"`
	DeliveredAt        string                `dynamodbav:"delivered_at,omitempty"`
	Services           []includedServiceItem `dynamodbav:"services,omitempty"`
	Items              []includedStockItem   `dynamodbav:"items,omitempty"`
	Budget             *budgetItem           `dynamodbav:"budget,omitempty"`
	MustReduceStock    bool                  `dynamodbav:"must_reduce_stock"`
	StockOutcome       string                `dynamodbav:"stock_outcome"`
}

// ServiceOrderDynamoRepository persists the whole ServiceOrder aggregate in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Timestamps are stored as RFC3339Nano UTC strings, so the timeout scan can
// compare execution_started_at lexicographically.
type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

// Update replaces the stored aggregate. It never upserts: the conditional
// write requires the order to exist. When the incoming aggregate carries a
// resolved stock outcome the condition also requires the stored outcome to
// still be pendente (or already identical), so concurrent saga deliveries
// cannot overwrite each other; a lost condition surfaces as the zero value.
func (r *ServiceOrderDynamoRepository) Update(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	condition := "attribute_exists(#id)"
	names := map[string]string{"#id": "id"}
	var values map[string]types.AttributeValue

	if o.StockInteraction.Outcome != entities.StockOutcomePendente {
		condition += " AND (#stock_outcome = :pendente OR #stock_outcome = :resolved)"
		names["#stock_outcome"] = "stock_outcome"
		values = map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberS{Value: string(entities.StockOutcomePendente)},
			":resolved": &types.AttributeValueMemberS{Value: string(o.StockInteraction.Outcome)},
		}
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceOrder{}, nil
		}
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ListInExecutionAwaitingStockTimeout scans for orders still in execution
// whose reservation was requested but never resolved and whose execution
// started at or before the threshold. The table is small enough that a
// filtered scan is acceptable here; a GSI on (status, execution_started_at)
// is the upgrade path if order volume grows.
func (r *ServiceOrderDynamoRepository) ListInExecutionAwaitingStockTimeout(ctx context.Context, threshold time.Time) ([]entities.ServiceOrder, error) {
	filter := "#status = :status AND must_reduce_stock = :must AND #stock_outcome = :pendente AND execution_started_at <= :threshold"
	names := map[string]string{
		"#status":        "status",
		"#stock_outcome": "stock_outcome",
	}
	values := map[string]types.AttributeValue{
		":status":    &types.AttributeValueMemberS{Value: string(entities.OSStatusEmExecucao)},
		":must":      &types.AttributeValueMemberBOOL{Value: true},
		":pendente":  &types.AttributeValueMemberS{Value: string(entities.StockOutcomePendente)},
		":threshold": &types.AttributeValueMemberS{Value: threshold.UTC().Format(time.RFC3339Nano)},
	}

	var orders []entities.ServiceOrder
	var lastKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeNames:  names,
			ExpressionAttributeValues: values,
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it serviceOrderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromServiceOrderItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return orders, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	services := make([]includedServiceItem, 0, len(o.IncludedServices))
	for _, s := range o.IncludedServices {
		services = append(services, includedServiceItem{
			ID:                s.ID,
			OriginalServiceID: s.OriginalServiceID,
			Name:              s.Name.String(),
			UnitPrice:         floatToString(s.UnitPrice.Amount()),
		})
	}

	items := make([]includedStockItem, 0, len(o.IncludedItems))
	for _, i := range o.IncludedItems {
		items = append(items, includedStockItem{
			ID:                  i.ID,
			OriginalStockItemID: i.OriginalStockItemID,
			Name:                i.Name.String(),
			ItemType:            string(i.ItemType),
			Quantity:            i.Quantity.Value(),
			UnitPrice:           floatToString(i.UnitPrice.Amount()),
		})
	}

	var budget *budgetItem
	if o.Budget != nil {
		budget = &budgetItem{
			ID:         o.Budget.ID,
			CreatedAt:  o.Budget.CreatedAt.UTC().Format(time.RFC3339Nano),
			TotalPrice: floatToString(o.Budget.TotalPrice.Amount()),
		}
	}

	return serviceOrderItem{
		ID:                 o.ID,
		Code:               o.Code,
		VehicleID:          o.VehicleID,
		Status:             string(o.Status),
		CreatedAt:          o.History.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExecutionStartedAt: timeToString(o.History.ExecutionStartedAt),
		FinalizedAt:        timeToString(o.History.FinalizedAt),
		DeliveredAt:        timeToString(o.History.DeliveredAt),
		Services:           services,
		Items:              items,
		Budget:             budget,
		MustReduceStock:    o.StockInteraction.MustReduceStock,
		StockOutcome:       string(o.StockInteraction.Outcome),
	}
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	services := make([]entities.IncludedService, 0, len(it.Services))
	for _, s := range it.Services {
		name, _ := valueobjects.NewName(s.Name)
		price, _ := valueobjects.NewMoney(stringToFloat(s.UnitPrice))
		services = append(services, entities.IncludedService{
			ID:                s.ID,
			OriginalServiceID: s.OriginalServiceID,
			Name:              name,
			UnitPrice:         price,
		})
	}

	items := make([]entities.IncludedItem, 0, len(it.Items))
	for _, i := range it.Items {
		name, _ := valueobjects.NewName(i.Name)
		qty, _ := valueobjects.NewQuantity(i.Quantity)
		price, _ := valueobjects.NewMoney(stringToFloat(i.UnitPrice))
		items = append(items, entities.IncludedItem{
			ID:                  i.ID,
			OriginalStockItemID: i.OriginalStockItemID,
			Name:                name,
			ItemType:            entities.ItemType(i.ItemType),
			Quantity:            qty,
			UnitPrice:           price,
		})
	}

	var budget *entities.Budget
	if it.Budget != nil {
		budgetCreatedAt, _ := time.Parse(time.RFC3339Nano, it.Budget.CreatedAt)
		total, _ := valueobjects.NewMoney(stringToFloat(it.Budget.TotalPrice))
		budget = &entities.Budget{
			ID:         it.Budget.ID,
			CreatedAt:  budgetCreatedAt,
			TotalPrice: total,
		}
	}

	return entities.ServiceOrder{
		ID:        it.ID,
		Code:      it.Code,
		VehicleID: it.VehicleID,
		Status:    entities.OSStatus(it.Status),
		History: entities.OSHistory{
			CreatedAt:          createdAt,
			ExecutionStartedAt: stringToTime(it.ExecutionStartedAt),
			FinalizedAt:        stringToTime(it.FinalizedAt),
			DeliveredAt:        stringToTime(it.DeliveredAt),
		},
		IncludedServices: services,
		IncludedItems:    items,
		Budget:           budget,
		StockInteraction: entities.StockInteraction{
			MustReduceStock: it.MustReduceStock,
			Outcome:         entities.StockReductionOutcome(it.StockOutcome),
		},
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringToFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func timeToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func stringToTime(v string) *time.Time {
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil
	}
	return &t
}
