package internal

import (
	"context"
	"time"

	"github.com/tpfand/tpfand/internal/controller"
	"github.com/tpfand/tpfand/internal/persistence"
	"github.com/tpfand/tpfand/internal/ui"
)

const journalBacklog = 64

// Journal records every profile transition in the persistence. Transitions
// are queued by the control loop and written by Run.
type Journal struct {
	persistence persistence.Persistence
	records     chan persistence.Record
}

func NewJournal(p persistence.Persistence) *Journal {
	return &Journal{
		persistence: p,
		records:     make(chan persistence.Record, journalBacklog),
	}
}

func (j *Journal) OnTick(snapshot controller.Snapshot) {}

func (j *Journal) OnTransition(transition controller.Transition, at time.Time) {
	record := persistence.Record{
		Time:      at,
		FromLevel: transition.FromLevel(),
		ToLevel:   transition.To.Level,
		Value:     transition.Value,
		Cause:     string(transition.Cause),
	}
	select {
	case j.records <- record:
	default:
		ui.Warning("Transition journal is falling behind, dropping transition to level %d", record.ToLevel)
	}
}

// Run appends queued transitions until ctx is cancelled, then writes
// whatever is still queued.
func (j *Journal) Run(ctx context.Context) error {
	for {
		select {
		case record := <-j.records:
			j.append(record)
		case <-ctx.Done():
			j.flush()
			return nil
		}
	}
}

func (j *Journal) flush() {
	for {
		select {
		case record := <-j.records:
			j.append(record)
		default:
			return
		}
	}
}

func (j *Journal) append(record persistence.Record) {
	err := j.persistence.AppendTransition(record)
	if err != nil {
		ui.Warning("Unable to record transition to level %d: %v", record.ToLevel, err)
	}
}
