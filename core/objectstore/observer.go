package objectstore

import "time"

// Operation names a store operation.
type Operation string

const (
	OpPut     Operation = "put"
	OpGet     Operation = "get"
	OpRemove  Operation = "remove"
	OpExists  Operation = "exists"
	OpStat    Operation = "stat"
	OpList    Operation = "list"
	OpPresign Operation = "presign"
	OpHealth  Operation = "health"
)

// Mutating reports whether the operation changes bucket contents.
func (o Operation) Mutating() bool {
	switch o {
	case OpPut, OpRemove, OpHealth:
		return true
	default:
		return false
	}
}

// Event describes one finished store operation.
type Event struct {
	Operation Operation
	Bucket    string
	Key       string
	Size      int64
	// Attempts is the number of vendor calls made, retries included.
	Attempts int
	Started  time.Time
	Duration time.Duration
	Err      error
}

// Observer receives store events. Implementations must be safe for
// concurrent use.
type Observer interface {
	OperationDone(ev Event)
	ClientReopened(err error)
}

func (s *Store) begin(op Operation, bucket, key string) *Event {
	return &Event{
		Operation: op,
		Bucket:    bucket,
		Key:       key,
		Started:   time.Now(),
	}
}

func (s *Store) finish(ev *Event, err error) {
	ev.Duration = time.Since(ev.Started)
	ev.Err = err
	for _, o := range s.observers {
		o.OperationDone(*ev)
	}
}
