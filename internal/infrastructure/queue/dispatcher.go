package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/api/metrics"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes ledger postings to a fixed set of workers using consistent
// hashing on the client ID, guaranteeing per-client posting order.
type Dispatcher struct {
	workers []chan ports.LedgerPostingInput
	service ports.LedgerService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.LedgerService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LedgerPostingInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LedgerPostingInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a posting to the worker responsible for its client.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(posting ports.LedgerPostingInput) {
	idx := d.shardIndex(posting.ClientID)
	d.workers[idx] <- posting
	metrics.LedgerQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a client ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(clientID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(clientID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LedgerPostingInput) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case posting, ok := <-ch:
			if !ok {
				return
			}
			metrics.LedgerQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.service.Post(ctx, posting); err != nil {
				d.log.Error().Err(err).
					Str("doc_num", posting.DocNum).
					Str("client_id", posting.ClientID).
					Int("worker_id", id).
					Msg("ledger posting failed")
			}
		}
	}
}
