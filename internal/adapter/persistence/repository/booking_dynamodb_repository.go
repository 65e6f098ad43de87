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
	defaultBookingsTableName = "bookings"
	bookingsRequesterIDIndex = "requester_id-index"
	bookingsProviderIDIndex  = "provider_id-index"
)

type bookingItem struct {
	ID                 string `dynamodbav:"id"`
	RequesterID        string `dynamodbav:"requester_id"`
	ProviderID         string `dynamodbav:"provider_id"`
	ServiceDescription string `dynamodbav:"service_description"`
	BookingDate        string `dynamodbav:"booking_date"`
	Amount             string `dynamodbav:"amount"`
	Status             string `dynamodbav:"status"`
	PaymentStatus      string `dynamodbav:"payment_status"`
	EscrowPaymentID    string `dynamodbav:"escrow_payment_id,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: requester_id-index (PK: requester_id)
//   - GSI: provider_id-index (PK: provider_id)
//
// All status mutations are conditional writes keyed on the current value, so
// racing writers get a rejected condition instead of a lost update.

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, asStateCheckConflict(err)
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByParticipant(ctx context.Context, userID string) ([]entities.Booking, error) {
	asRequester, err := r.queryIndex(ctx, bookingsRequesterIDIndex, "requester_id", userID)
	if err != nil {
		return nil, err
	}
	asProvider, err := r.queryIndex(ctx, bookingsProviderIDIndex, "provider_id", userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(asRequester))
	items := make([]entities.Booking, 0, len(asRequester)+len(asProvider))
	for _, b := range append(asRequester, asProvider...) {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		items = append(items, b)
	}
	return items, nil
}

func (r *BookingDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": key,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.BookingStatus) (entities.Booking, error) {
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

func (r *BookingDynamoRepository) ClaimEscrow(ctx context.Context, bookingID, escrowID string) (entities.Booking, error) {
	// The claim succeeds only when no escrow slot is taken or the previous
	// payment reached a state that frees the slot (none after a failed
	// authorization, refunded after a processor refund).
	return r.update(ctx, bookingID,
		"SET #epid = :eid, #payment_status = :pending, #updated_at = :updated_at",
		"attribute_exists(#id) AND (attribute_not_exists(#epid) OR #payment_status = :none OR #payment_status = :refunded)",
		map[string]types.AttributeValue{
			":eid":      &types.AttributeValueMemberS{Value: escrowID},
			":pending":  &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
			":none":     &types.AttributeValueMemberS{Value: string(entities.PaymentStatusNone)},
			":refunded": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusRefunded)},
		},
		map[string]string{"#epid": "escrow_payment_id", "#payment_status": "payment_status"},
	)
}

func (r *BookingDynamoRepository) ReleaseEscrowClaim(ctx context.Context, bookingID, escrowID string) (entities.Booking, error) {
	return r.update(ctx, bookingID,
		"REMOVE #epid SET #payment_status = :none, #updated_at = :updated_at",
		"attribute_exists(#id) AND #epid = :eid",
		map[string]types.AttributeValue{
			":eid":  &types.AttributeValueMemberS{Value: escrowID},
			":none": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusNone)},
		},
		map[string]string{"#epid": "escrow_payment_id", "#payment_status": "payment_status"},
	)
}

func (r *BookingDynamoRepository) SetPaymentStatus(ctx context.Context, bookingID string, status entities.PaymentStatus) (entities.Booking, error) {
	return r.update(ctx, bookingID,
		"SET #payment_status = :ps, #updated_at = :updated_at",
		"attribute_exists(#id)",
		map[string]types.AttributeValue{
			":ps": &types.AttributeValueMemberS{Value: string(status)},
		},
		map[string]string{"#payment_status": "payment_status"},
	)
}

func (r *BookingDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Booking, error) {
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
		return entities.Booking{}, asStateCheckConflict(err)
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func toBookingItem(b entities.Booking) bookingItem {
	return bookingItem{
		ID:                 b.ID,
		RequesterID:        b.RequesterID,
		ProviderID:         b.ProviderID,
		ServiceDescription: b.ServiceDescription,
		BookingDate:        b.BookingDate.UTC().Format(time.RFC3339Nano),
		Amount:             floatToString(b.Amount),
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		EscrowPaymentID:    b.EscrowPaymentID,
		CreatedAt:          b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	bookingDate, _ := time.Parse(time.RFC3339Nano, it.BookingDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Booking{
		ID:                 it.ID,
		RequesterID:        it.RequesterID,
		ProviderID:         it.ProviderID,
		ServiceDescription: it.ServiceDescription,
		BookingDate:        bookingDate,
		Amount:             amount,
		Status:             entities.BookingStatus(it.Status),
		PaymentStatus:      entities.PaymentStatus(it.PaymentStatus),
		EscrowPaymentID:    it.EscrowPaymentID,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
}

func floatToString(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
