package repository

import (
	"context"
	"strconv"
	"time"

	"supplylink/internal/domain/entities"
	"supplylink/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEscrowPaymentsTableName = "escrow_payments"
	escrowPaymentsBookingIDIndex   = "booking_id-index"
)

type escrowPaymentItem struct {
	ID                string `dynamodbav:"id"`
	BookingID         string `dynamodbav:"booking_id"`
	PayerID           string `dynamodbav:"payer_id"`
	PayeeID           string `dynamodbav:"payee_id"`
	Amount            string `dynamodbav:"amount"`
	ExternalReference string `dynamodbav:"external_reference,omitempty"`
	Status            string `dynamodbav:"status"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// EscrowPaymentDynamoRepository persists EscrowPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: booking_id-index (PK: booking_id)
//
// Rows are never deleted; terminal records stay as audit trail. Status
// transitions are conditional on the current status so concurrent callers
// cannot both win the same edge.

type EscrowPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEscrowPaymentRepository = (*EscrowPaymentDynamoRepository)(nil)

func NewEscrowPaymentDynamoRepository(ddb *dynamodb.Client) *EscrowPaymentDynamoRepository {
	return &EscrowPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESCROW_PAYMENTS_TABLE", defaultEscrowPaymentsTableName),
	}
}

func (r *EscrowPaymentDynamoRepository) Create(ctx context.Context, p entities.EscrowPayment) (entities.EscrowPayment, error) {
	it := toEscrowPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EscrowPayment{}, err
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
		return entities.EscrowPayment{}, asStateCheckConflict(err)
	}
	return p, nil
}

func (r *EscrowPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.EscrowPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EscrowPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.EscrowPayment{}, nil
	}

	var it escrowPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EscrowPayment{}, err
	}
	return fromEscrowPaymentItem(it), nil
}

// GetByBookingID returns the most recent escrow payment for a booking.
func (r *EscrowPaymentDynamoRepository) GetByBookingID(ctx context.Context, bookingID string) (entities.EscrowPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(escrowPaymentsBookingIDIndex),
		KeyConditionExpression: aws.String("booking_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bookingID},
		},
	})
	if err != nil {
		return entities.EscrowPayment{}, err
	}
	if len(out.Items) == 0 {
		return entities.EscrowPayment{}, nil
	}

	var latest entities.EscrowPayment
	for _, raw := range out.Items {
		var it escrowPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.EscrowPayment{}, err
		}
		p := fromEscrowPaymentItem(it)
		if latest.ID == "" || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func (r *EscrowPaymentDynamoRepository) AttachReference(ctx context.Context, id, externalRef string) (entities.EscrowPayment, error) {
	return r.update(ctx, id,
		"SET #ref = :ref, #updated_at = :updated_at",
		"attribute_exists(#id) AND (attribute_not_exists(#ref) OR #ref = :ref)",
		map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: externalRef},
		},
		map[string]string{"#ref": "external_reference"},
	)
}

func (r *EscrowPaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.EscrowStatus) (entities.EscrowPayment, error) {
	return r.update(ctx, id,
		"SET #status = :to, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status = :from",
		map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: string(from)},
			":to":   &types.AttributeValueMemberS{Value: string(to)},
		},
		map[string]string{"#status": "status"},
	)
}

func (r *EscrowPaymentDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.EscrowPayment, error) {
	values[":updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.EscrowPayment{}, asStateCheckConflict(err)
	}
	if len(out.Attributes) == 0 {
		return entities.EscrowPayment{}, nil
	}

	var it escrowPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EscrowPayment{}, err
	}
	return fromEscrowPaymentItem(it), nil
}

func toEscrowPaymentItem(p entities.EscrowPayment) escrowPaymentItem {
	return escrowPaymentItem{
		ID:                p.ID,
		BookingID:         p.BookingID,
		PayerID:           p.PayerID,
		PayeeID:           p.PayeeID,
		Amount:            floatToString(p.Amount),
		ExternalReference: p.ExternalReference,
		Status:            string(p.Status),
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEscrowPaymentItem(it escrowPaymentItem) entities.EscrowPayment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.EscrowPayment{
		ID:                it.ID,
		BookingID:         it.BookingID,
		PayerID:           it.PayerID,
		PayeeID:           it.PayeeID,
		Amount:            amount,
		ExternalReference: it.ExternalReference,
		Status:            entities.EscrowStatus(it.Status),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
