package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"revorz_storefront/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/segmentio/kafka-go"
)

var (
	ErrMissingProfileID  = errors.New("missing or invalid profile_id")
	ErrMalformedCheckout = errors.New("malformed checkout message")
)

const defaultCheckoutRetryDelay = time.Second

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type cartClearer interface {
	ClearProfile(ctx context.Context, profileID string) error
}

// CheckoutConsumer clears the cart of a profile when a checkout completes.
// A message is committed only once its cart is cleared or it is found to be malformed.
type CheckoutConsumer struct {
	logger     *gecho.Logger
	reader     messageReader
	carts      cartClearer
	retryDelay time.Duration
}

func NewCheckoutConsumer(logger *gecho.Logger, cfg *structs.CheckoutConfig, carts *CartService) *CheckoutConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MaxBytes: 10e6, // 10MB
	})
	return &CheckoutConsumer{logger: logger, reader: reader, carts: carts, retryDelay: defaultCheckoutRetryDelay}
}

type checkoutCompleted struct {
	ProfileID string `json:"profile_id"`
}

func (cc *CheckoutConsumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		cc.consumeOne(ctx)
	}
}

func (cc *CheckoutConsumer) Close() {
	if err := cc.reader.Close(); err != nil {
		cc.logger.Error("Failed to close checkout reader", gecho.Field("error", err))
	}
}

func (cc *CheckoutConsumer) consumeOne(ctx context.Context) {
	m, err := cc.reader.FetchMessage(ctx)
	if err != nil {
		if ctx.Err() == nil {
			cc.logger.Error("Failed to read checkout message", gecho.Field("error", err))
		}
		return
	}

	if err := cc.process(ctx, m); err != nil {
		return
	}

	if err := cc.reader.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
		cc.logger.Error("Failed to commit checkout message",
			gecho.Field("error", err),
			gecho.Field("offset", m.Offset),
			gecho.Field("partition", m.Partition),
		)
	}
}

// process retries storage failures until the cart is cleared or ctx ends; malformed messages are dropped
func (cc *CheckoutConsumer) process(ctx context.Context, m kafka.Message) error {
	for {
		err := cc.handle(ctx, m.Value)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrMalformedCheckout) || errors.Is(err, ErrMissingProfileID) {
			cc.logger.Warn("Dropping checkout message",
				gecho.Field("error", err),
				gecho.Field("offset", m.Offset),
				gecho.Field("partition", m.Partition),
			)
			return nil
		}

		cc.logger.Warn("Failed to clear cart after checkout, retrying",
			gecho.Field("error", err),
			gecho.Field("offset", m.Offset),
			gecho.Field("partition", m.Partition),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cc.retryDelay):
		}
	}
}

func (cc *CheckoutConsumer) handle(ctx context.Context, value []byte) error {
	var payload checkoutCompleted
	if err := json.Unmarshal(value, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCheckout, err)
	}
	if payload.ProfileID == "" {
		return ErrMissingProfileID
	}

	return cc.carts.ClearProfile(ctx, payload.ProfileID)
}
