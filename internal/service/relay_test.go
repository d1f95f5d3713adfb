package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/entities"
	"github.com/Elly-L/main-shilingi-x-sub001/internal/service"
	mocks "github.com/Elly-L/main-shilingi-x-sub001/internal/service/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentRelay_RelayPending(t *testing.T) {
	type MockBehavior func(outbox *mocks.MockPaymentOutbox, publisher *mocks.MockResultPublisher)

	unpublished := completedAttempt(entities.PaymentSucceeded, 0, "NLJ7RT61SV")
	second := completedAttempt(entities.PaymentSucceeded, 0, "NLJ7RT61SW")
	second.ID = "attempt-2"
	second.CheckoutRequestID = "ws_CO_2"

	brokerErr := errors.New("broker down")

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantSent     int
		wantErr      error
	}{
		{
			name: "stored result left by a failed publish is sent",
			mockBehavior: func(outbox *mocks.MockPaymentOutbox, publisher *mocks.MockResultPublisher) {
				outbox.EXPECT().ListUnpublished(mock.Anything, mock.AnythingOfType("time.Time"), 100).
					Return([]entities.PaymentAttempt{unpublished}, nil)
				publisher.EXPECT().
					PublishPaymentResult(mock.Anything, mock.MatchedBy(func(r entities.PaymentResult) bool {
						return r.AttemptID == "attempt-1" &&
							r.CheckoutRequestID == "ws_CO_1" &&
							r.Status == entities.PaymentSucceeded &&
							r.Amount.Equal(decimal.NewFromInt(100))
					})).
					Return(nil)
				outbox.EXPECT().MarkPublished(mock.Anything, "attempt-1").Return(nil)
			},
			wantSent: 1,
		},
		{
			name: "nothing pending",
			mockBehavior: func(outbox *mocks.MockPaymentOutbox, publisher *mocks.MockResultPublisher) {
				outbox.EXPECT().ListUnpublished(mock.Anything, mock.Anything, 100).Return(nil, nil)
			},
		},
		{
			name: "stops at the first publish failure",
			mockBehavior: func(outbox *mocks.MockPaymentOutbox, publisher *mocks.MockResultPublisher) {
				outbox.EXPECT().ListUnpublished(mock.Anything, mock.Anything, 100).
					Return([]entities.PaymentAttempt{unpublished, second}, nil)
				publisher.EXPECT().PublishPaymentResult(mock.Anything, mock.Anything).Return(nil).Once()
				outbox.EXPECT().MarkPublished(mock.Anything, "attempt-1").Return(nil)
				publisher.EXPECT().PublishPaymentResult(mock.Anything, mock.Anything).Return(brokerErr).Once()
			},
			wantSent: 1,
			wantErr:  brokerErr,
		},
		{
			name: "list failure",
			mockBehavior: func(outbox *mocks.MockPaymentOutbox, publisher *mocks.MockResultPublisher) {
				outbox.EXPECT().ListUnpublished(mock.Anything, mock.Anything, 100).Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("failed to list unpublished results"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outbox := mocks.NewMockPaymentOutbox(t)
			publisher := mocks.NewMockResultPublisher(t)
			tc.mockBehavior(outbox, publisher)

			relay := service.NewPaymentRelay(slog.New(slog.NewTextHandler(io.Discard, nil)), outbox, publisher, time.Minute)
			sent, err := relay.RelayPending(context.Background())

			assert.Equal(t, tc.wantSent, sent)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPaymentRelay_ListsOnlySettledResults(t *testing.T) {
	outbox := mocks.NewMockPaymentOutbox(t)
	publisher := mocks.NewMockResultPublisher(t)

	start := time.Now()
	outbox.EXPECT().
		ListUnpublished(mock.Anything, mock.MatchedBy(func(before time.Time) bool {
			return before.Before(start)
		}), 100).
		Return(nil, nil)

	relay := service.NewPaymentRelay(slog.New(slog.NewTextHandler(io.Discard, nil)), outbox, publisher, time.Minute)
	_, err := relay.RelayPending(context.Background())

	assert.NoError(t, err)
}
