package audit

import (
	"log/slog"

	"github.com/google/uuid"
)

// Event records one mutating operation: what was attempted, on which
// record, and how it ended.
type Event struct {
	EventID  string
	Action   string
	Entity   string
	EntityID *uint
	Outcome  string
	Metadata any
}

const OutcomeSuccess = "success"

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			slog.Warn("audit write failed", slog.Any("err", err), slog.String("action", ev.Action))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if ev.EventID == "" {
		ev.EventID = uuid.NewString()
	}
	if ev.Outcome == "" {
		ev.Outcome = OutcomeSuccess
	}

	slog.Info("audit",
		slog.String("event_id", ev.EventID),
		slog.String("action", ev.Action),
		slog.String("entity", ev.Entity),
		slog.String("outcome", ev.Outcome),
	)

	select {
	case d.queue <- ev:
	default:
		// Queue full: drop the event rather than stall a mutation.
		slog.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}
