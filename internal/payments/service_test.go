package payments

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	byID       map[uuid.UUID]*Payment
	byStripeID map[string]*Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		byID:       make(map[uuid.UUID]*Payment),
		byStripeID: make(map[string]*Payment),
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, p *Payment) error {
	if _, ok := f.byStripeID[p.StripePaymentID]; ok {
		return ErrDuplicatePayment
	}
	p.ID = uuid.New()
	f.byID[p.ID] = p
	f.byStripeID[p.StripePaymentID] = p
	return nil
}

func (f *fakePaymentRepo) GetByID(_ context.Context, id uuid.UUID) (*Payment, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePaymentRepo) GetByStripeID(_ context.Context, stripeID string) (*Payment, error) {
	p, ok := f.byStripeID[stripeID]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePaymentRepo) GetAll(_ context.Context) ([]Payment, error) {
	var list []Payment
	for _, p := range f.byID {
		list = append(list, *p)
	}
	return list, nil
}

func (f *fakePaymentRepo) GetByUser(_ context.Context, userID uuid.UUID) ([]Payment, error) {
	var list []Payment
	for _, p := range f.byID {
		if p.UserID == userID {
			list = append(list, *p)
		}
	}
	return list, nil
}

func (f *fakePaymentRepo) Update(_ context.Context, p *Payment) error {
	if _, ok := f.byID[p.ID]; !ok {
		return ErrPaymentNotFound
	}
	copied := *p
	f.byID[p.ID] = &copied
	return nil
}

func recordRequest() RecordPaymentRequest {
	return RecordPaymentRequest{
		UserID:          uuid.NewString(),
		StripePaymentID: "pi_3LvXYZ",
		Amount:          8500,
		Currency:        "EUR",
	}
}

func TestRecordPaymentDefaults(t *testing.T) {
	svc := NewService(newFakePaymentRepo())

	p, err := svc.RecordPayment(context.Background(), recordRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusPending, p.Status)
	assert.Equal(t, "eur", p.Currency, "currency is normalized to lower case")
	assert.Nil(t, p.AppointmentID)
}

func TestRecordPaymentWithAppointment(t *testing.T) {
	svc := NewService(newFakePaymentRepo())

	req := recordRequest()
	appointmentID := uuid.New()
	req.AppointmentID = appointmentID.String()

	p, err := svc.RecordPayment(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, p.AppointmentID)
	assert.Equal(t, appointmentID, *p.AppointmentID)
}

func TestRecordPaymentDuplicateReference(t *testing.T) {
	svc := NewService(newFakePaymentRepo())

	_, err := svc.RecordPayment(context.Background(), recordRequest())
	require.NoError(t, err)

	_, err = svc.RecordPayment(context.Background(), recordRequest())
	assert.ErrorIs(t, err, ErrDuplicatePayment)
}

func TestUpdateStatusTransitions(t *testing.T) {
	svc := NewService(newFakePaymentRepo())
	ctx := context.Background()

	p, err := svc.RecordPayment(ctx, recordRequest())
	require.NoError(t, err)

	completed, err := svc.UpdateStatus(ctx, p.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, completed.Status)

	// Completed may only move to refunded.
	_, err = svc.UpdateStatus(ctx, p.ID, StatusFailed)
	assert.ErrorIs(t, err, ErrInvalidStatusChange)

	refunded, err := svc.UpdateStatus(ctx, p.ID, StatusRefunded)
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, refunded.Status)

	// Refunded is terminal.
	_, err = svc.UpdateStatus(ctx, p.ID, StatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatusChange)
}

func TestUpdateStatusUnknownPayment(t *testing.T) {
	svc := NewService(newFakePaymentRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), StatusCompleted)
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestUpdateStatusRejectsBogusValue(t *testing.T) {
	svc := NewService(newFakePaymentRepo())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), Status("chargeback"))
	assert.ErrorIs(t, err, ErrInvalidStatusChange)
}
