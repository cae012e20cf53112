package ingest

import (
	"context"
	"testing"
	"time"

	"backend/internal/app/mail"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingFetcher struct {
	release chan struct{}
	started chan struct{}
}

func (b *blockingFetcher) FetchUnread(context.Context) ([]mail.InboundEmail, error) {
	close(b.started)
	<-b.release
	return nil, nil
}

func TestTriggerRejectsOverlap(t *testing.T) {
	fetcher := &blockingFetcher{
		release: make(chan struct{}),
		started: make(chan struct{}),
	}
	poller := NewPoller(NewPipeline(newMemStore(), fetcher, &stubExtractor{}, nil), time.Minute)

	firstDone := make(chan error, 1)
	go func() {
		_, err := poller.Trigger(context.Background())
		firstDone <- err
	}()

	<-fetcher.started
	_, err := poller.Trigger(context.Background())
	assert.ErrorIs(t, err, ErrPollInProgress)

	close(fetcher.release)
	require.NoError(t, <-firstDone)

	// Once the first run finishes the poller accepts triggers again.
	fetcher.release = make(chan struct{})
	close(fetcher.release)
	fetcher.started = make(chan struct{})
	_, err = poller.Trigger(context.Background())
	assert.NoError(t, err)
}
