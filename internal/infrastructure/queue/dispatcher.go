package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/farmlink/marketplace-api/internal/api/metrics"
	"github.com/farmlink/marketplace-api/internal/core/domain"
	"github.com/farmlink/marketplace-api/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// MailDispatcher delivers queued mail on a fixed set of workers. Messages to
// the same recipient land on the same worker so they are sent in order.
type MailDispatcher struct {
	workers []chan domain.MailMessage
	mailer  ports.Mailer
	log     zerolog.Logger
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewMailDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan domain.MailMessage, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.MailMessage, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. ctx bounds each delivery; workers
// exit once Close has drained their channel.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands msg to its worker without blocking. It returns false when
// the worker's buffer is full or the dispatcher is closed.
func (d *MailDispatcher) Enqueue(msg domain.MailMessage) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return false
	}

	select {
	case d.workers[d.shardIndex(msg.To)] <- msg:
		metrics.MailQueued.Inc()
		return true
	default:
		metrics.MailDropped.Inc()
		return false
	}
}

// Close stops accepting mail and waits for queued messages to be delivered.
func (d *MailDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.MailMessage) {
	defer d.wg.Done()
	for msg := range ch {
		if err := d.mailer.Send(ctx, msg); err != nil {
			metrics.MailFailed.Inc()
			d.log.Error().Err(err).
				Str("to", msg.To).
				Str("subject", msg.Subject).
				Int("worker_id", id).
				Msg("mail delivery failed")
			continue
		}
		metrics.MailSent.Inc()
	}
}
