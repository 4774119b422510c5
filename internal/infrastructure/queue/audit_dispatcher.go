package queue

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/lorehub/lore-hub-api/internal/api/metrics"
	"github.com/lorehub/lore-hub-api/internal/core/domain"
	"github.com/lorehub/lore-hub-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// AuditDispatcher routes audit entries to a fixed set of workers using
// consistent hashing on the actor id, guaranteeing per-actor write ordering.
// Persistence failures are logged and dropped; recording an audit entry
// never fails the admin operation that produced it.
type AuditDispatcher struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates an AuditDispatcher with numWorkers sharded
// workers. If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry on the worker responsible for its actor.
// When the worker channel is full the entry is dropped rather than
// blocking the request path.
func (d *AuditDispatcher) Record(entry domain.AuditEntry) {
	idx := d.shardIndex(entry.ActorID)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(fmt.Sprint(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.AuditEntriesDroppedTotal.Inc()
		d.log.Warn().Str("action", string(entry.Action)).Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps an actor id deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(actorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	worker := fmt.Sprint(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, &entry); err != nil {
				d.log.Error().Err(err).
					Str("action", string(entry.Action)).
					Str("target_id", entry.TargetID).
					Int("worker_id", id).
					Msg("audit write failed")
				continue
			}
			metrics.AuditEntriesWrittenTotal.WithLabelValues(string(entry.Action)).Inc()
		}
	}
}
