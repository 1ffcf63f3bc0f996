package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages  chan kafka.Message
	closed    bool
	mu        sync.Mutex
	committed []int64
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case m := <-f.messages:
		return m, nil
	}
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeReader) offsets() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.committed...)
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

type recordingClearer struct {
	mu       sync.Mutex
	cleared  []string
	err      error
	failures int
}

func (r *recordingClearer) ClearProfile(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared = append(r.cleared, profileID)
	if r.failures > 0 {
		r.failures--
		return errors.New("storage down")
	}
	return r.err
}

func (r *recordingClearer) profiles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.cleared...)
}

func TestCheckoutConsumer_Handle(t *testing.T) {
	carts := &recordingClearer{}
	cc := &CheckoutConsumer{logger: testLogger(), carts: carts}
	ctx := context.Background()

	require.NoError(t, cc.handle(ctx, []byte(`{"profile_id":"prof-1","checkout_id":"c-1"}`)))
	assert.ErrorIs(t, cc.handle(ctx, []byte(`{"checkout_id":"c-2"}`)), ErrMissingProfileID)
	assert.ErrorIs(t, cc.handle(ctx, []byte(`not json`)), ErrMalformedCheckout)

	assert.Equal(t, []string{"prof-1"}, carts.profiles())
}

func TestCheckoutConsumer_HandlePropagatesStorageError(t *testing.T) {
	carts := &recordingClearer{err: errors.New("storage down")}
	cc := &CheckoutConsumer{logger: testLogger(), carts: carts}

	err := cc.handle(context.Background(), []byte(`{"profile_id":"prof-1"}`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedCheckout)
}

func TestCheckoutConsumer_RunClearsCarts(t *testing.T) {
	reader := &fakeReader{messages: make(chan kafka.Message, 3)}
	carts := &recordingClearer{}
	cc := &CheckoutConsumer{logger: testLogger(), reader: reader, carts: carts}

	reader.messages <- kafka.Message{Offset: 1, Value: []byte(`{"profile_id":"prof-1"}`)}
	reader.messages <- kafka.Message{Offset: 2, Value: []byte(`garbage`)}
	reader.messages <- kafka.Message{Offset: 3, Value: []byte(`{"profile_id":"prof-2"}`)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cc.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(carts.profiles()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"prof-1", "prof-2"}, carts.profiles())
	require.Eventually(t, func() bool {
		return len(reader.offsets()) == 3
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []int64{1, 2, 3}, reader.offsets())

	cancel()
	<-done
	cc.Close()
	assert.True(t, reader.closed)
}

func TestCheckoutConsumer_CommitsOnlyAfterClear(t *testing.T) {
	reader := &fakeReader{messages: make(chan kafka.Message, 1)}
	carts := &recordingClearer{failures: 2}
	cc := &CheckoutConsumer{logger: testLogger(), reader: reader, carts: carts, retryDelay: 5 * time.Millisecond}

	reader.messages <- kafka.Message{Offset: 7, Value: []byte(`{"profile_id":"prof-1"}`)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cc.consumeOne(ctx)

	assert.Equal(t, []string{"prof-1", "prof-1", "prof-1"}, carts.profiles())
	assert.Equal(t, []int64{7}, reader.offsets())
}

func TestCheckoutConsumer_NoCommitWhenStoppedBeforeClear(t *testing.T) {
	reader := &fakeReader{messages: make(chan kafka.Message, 1)}
	carts := &recordingClearer{err: errors.New("storage down")}
	cc := &CheckoutConsumer{logger: testLogger(), reader: reader, carts: carts, retryDelay: 5 * time.Millisecond}

	reader.messages <- kafka.Message{Offset: 3, Value: []byte(`{"profile_id":"prof-1"}`)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		cc.consumeOne(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(carts.profiles()) >= 2
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Empty(t, reader.offsets())
}

func TestCheckoutConsumer_ClearsStoredCart(t *testing.T) {
	ctx := context.Background()
	ss := newTestStorageService()
	seedCart(t, ss, "sess-1", "prof-1")
	cs := NewCartService(testLogger(), ss, Destinations(testStorefrontConfig()))
	cc := &CheckoutConsumer{logger: testLogger(), carts: cs}

	require.NoError(t, cc.handle(ctx, []byte(`{"profile_id":"prof-1"}`)))

	ind, err := cs.Indicator(ctx, ss.Accessor("sess-1", "prof-1"))
	require.NoError(t, err)
	assert.False(t, ind.Active)
}
