package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/Elly-L/main-shilingi-x-sub001/internal/handler"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	brokerAddr = "localhost:9092"
	topic      = "payment-results"
)

// Wallets credited by the generator. Every tenth message repeats the
// previous checkout id to exercise duplicate handling.
var userIDs = []string{
	"9b2f6a3e-4c1d-4f0a-8e7b-1a2b3c4d5e6f",
	"0d8e7c6b-5a49-4382-9170-fedcba987654",
}

func randomReceipt() string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, 10)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generatePaymentResult(prev *handler.PaymentResultMessage) handler.PaymentResultMessage {
	if prev != nil && rand.Intn(10) == 0 {
		return *prev
	}

	msg := handler.PaymentResultMessage{
		AttemptID:         uuid.NewString(),
		UserID:            userIDs[rand.Intn(len(userIDs))],
		CheckoutRequestID: fmt.Sprintf("ws_CO_%s_%d", time.Now().Format("02012006150405"), rand.Intn(1_000_000)),
		Amount:            decimal.NewFromInt(int64(rand.Intn(5000) + 10)),
		CompletedAt:       time.Now().UTC(),
	}

	if rand.Intn(4) == 0 {
		msg.Status = "failed"
		msg.ResultCode = 1032
		msg.ResultDesc = "Request cancelled by user"
		return msg
	}

	msg.Status = "succeeded"
	msg.MpesaReceipt = randomReceipt()
	msg.ResultDesc = "The service request is processed successfully."
	return msg
}

func main() {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokerAddr),
		Topic:    topic,
		Balancer: &kafka.Hash{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	var prev *handler.PaymentResultMessage

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			msg := generatePaymentResult(prev)
			prev = &msg

			data, err := json.Marshal(msg)
			if err != nil {
				log.Println("failed to marshal payment result", err)
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(msg.UserID), Value: data}); err != nil {
				log.Println("failed to publish payment result", err)
				continue
			}
			log.Println("payment result generated", msg.CheckoutRequestID, msg.Status)
		case <-ctx.Done():
			return
		}
	}
}
