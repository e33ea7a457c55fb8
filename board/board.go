// Package board keeps the three-column service status board (Pending, Proses,
// Selesai) and reconciles card moves with storage.
package board

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/LarzzCode/LarGarage/models"
)

// MsgMoveFailed is the alert shown when the remote status write fails.
const MsgMoveFailed = "Gagal memindahkan kartu (Koneksi Error)"

var (
	ErrUnknownBucket   = errors.New("kolom board tidak dikenal")
	ErrInvalidPosition = errors.New("posisi kartu tidak valid")
	ErrRemoteUpdate    = errors.New("gagal menyimpan status")
)

// StatusUpdater persists a status change for one service.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint, status models.ServiceStatus) error
}

// Alerter surfaces a failed move to the user.
type Alerter interface {
	Alert(ctx context.Context, serviceID uint, message string)
}

type AlertFunc func(ctx context.Context, serviceID uint, message string)

func (f AlertFunc) Alert(ctx context.Context, serviceID uint, message string) {
	f(ctx, serviceID, message)
}

// Position is a bucket and an index inside it.
type Position struct {
	Bucket models.ServiceStatus `json:"droppableId" binding:"required"`
	Index  int                  `json:"index"`
}

// DragResult describes a drag release. Destination is nil when the drag was cancelled.
type DragResult struct {
	DraggableID string    `json:"draggableId"`
	Source      Position  `json:"source"`
	Destination *Position `json:"destination"`
}

type Phase string

const (
	PhaseNoop       Phase = "noop"
	PhaseReordered  Phase = "reordered"
	PhasePending    Phase = "pending"
	PhaseCommitted  Phase = "committed"
	PhaseFailed     Phase = "failed"
	PhaseRolledBack Phase = "rolled_back"
)

// Transition records the last cross-column move of a card.
type Transition struct {
	ServiceID uint                 `json:"service_id"`
	From      models.ServiceStatus `json:"from"`
	To        models.ServiceStatus `json:"to"`
	Phase     Phase                `json:"phase"`
}

type Outcome struct {
	Transition
	Columns []Column `json:"columns"`
}

type Column struct {
	Status models.ServiceStatus `json:"status"`
	Items  []models.Service     `json:"items"`
}

type Option func(*Board)

func WithAlerter(a Alerter) Option {
	return func(b *Board) { b.alerter = a }
}

// WithRollback makes a failed remote write revert the optimistic move.
func WithRollback(enabled bool) Option {
	return func(b *Board) { b.rollback = enabled }
}

// WithOnStatusChange registers the callback run after a committed move.
func WithOnStatusChange(fn func(ctx context.Context, s models.Service)) Option {
	return func(b *Board) { b.onStatusChange = fn }
}

type Board struct {
	mu             sync.Mutex
	columns        map[models.ServiceStatus][]models.Service
	transitions    map[uint]Transition
	updater        StatusUpdater
	alerter        Alerter
	rollback       bool
	onStatusChange func(ctx context.Context, s models.Service)
}

func New(updater StatusUpdater, opts ...Option) *Board {
	b := &Board{
		columns:     emptyColumns(),
		transitions: make(map[uint]Transition),
		updater:     updater,
		alerter:     AlertFunc(func(context.Context, uint, string) {}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func emptyColumns() map[models.ServiceStatus][]models.Service {
	cols := make(map[models.ServiceStatus][]models.Service, 3)
	for _, s := range models.Statuses() {
		cols[s] = []models.Service{}
	}
	return cols
}

// Load replaces the board content. Services with an unknown status go to
// Pending but keep their raw status value.
func (b *Board) Load(services []models.Service) {
	cols := emptyColumns()
	for _, s := range services {
		key := s.Status
		if !key.Valid() {
			key = models.StatusPending
		}
		cols[key] = append(cols[key], s)
	}

	b.mu.Lock()
	b.columns = cols
	b.transitions = make(map[uint]Transition)
	b.mu.Unlock()
}

// Columns returns a copy of the board in fixed column order.
func (b *Board) Columns() []Column {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Board) snapshotLocked() []Column {
	out := make([]Column, 0, len(b.columns))
	for _, status := range models.Statuses() {
		items := make([]models.Service, len(b.columns[status]))
		copy(items, b.columns[status])
		out = append(out, Column{Status: status, Items: items})
	}
	return out
}

// Transitions returns the last recorded move per service.
func (b *Board) Transitions() []Transition {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Transition, 0, len(b.transitions))
	for _, status := range models.Statuses() {
		for _, s := range b.columns[status] {
			if tr, ok := b.transitions[s.ID]; ok {
				out = append(out, tr)
			}
		}
	}
	return out
}

// Move applies a drag release. A cross-column move is applied locally first,
// then exactly one status write is issued outside the lock.
func (b *Board) Move(ctx context.Context, drag DragResult) (Outcome, error) {
	if drag.Destination == nil {
		return b.outcome(Transition{Phase: PhaseNoop}), nil
	}
	src, dst := drag.Source, *drag.Destination
	if !src.Bucket.Valid() || !dst.Bucket.Valid() {
		return Outcome{}, ErrUnknownBucket
	}
	if src == dst {
		return b.outcome(Transition{Phase: PhaseNoop}), nil
	}

	b.mu.Lock()
	from := b.columns[src.Bucket]
	if src.Index < 0 || src.Index >= len(from) || dst.Index < 0 {
		b.mu.Unlock()
		return Outcome{}, ErrInvalidPosition
	}
	card := from[src.Index]
	if drag.DraggableID != "" && drag.DraggableID != strconv.FormatUint(uint64(card.ID), 10) {
		b.mu.Unlock()
		return Outcome{}, fmt.Errorf("%w: kartu %s tidak ada di posisi %d", ErrInvalidPosition, drag.DraggableID, src.Index)
	}

	if src.Bucket == dst.Bucket {
		items := remove(from, src.Index)
		b.columns[src.Bucket] = insert(items, dst.Index, card)
		tr := Transition{ServiceID: card.ID, From: src.Bucket, To: dst.Bucket, Phase: PhaseReordered}
		out := Outcome{Transition: tr, Columns: b.snapshotLocked()}
		b.mu.Unlock()
		return out, nil
	}

	previous := card.Status
	b.columns[src.Bucket] = remove(from, src.Index)
	card.Status = dst.Bucket
	b.columns[dst.Bucket] = insert(b.columns[dst.Bucket], dst.Index, card)
	tr := Transition{ServiceID: card.ID, From: src.Bucket, To: dst.Bucket, Phase: PhasePending}
	b.transitions[card.ID] = tr
	b.mu.Unlock()

	err := b.updater.UpdateStatus(ctx, card.ID, dst.Bucket)
	if err != nil {
		b.alerter.Alert(ctx, card.ID, MsgMoveFailed)

		b.mu.Lock()
		if b.rollback && b.revertLocked(card.ID, dst.Bucket, src, previous) {
			tr.Phase = PhaseRolledBack
		} else {
			tr.Phase = PhaseFailed
		}
		b.transitions[card.ID] = tr
		out := Outcome{Transition: tr, Columns: b.snapshotLocked()}
		b.mu.Unlock()
		return out, fmt.Errorf("%w: %v", ErrRemoteUpdate, err)
	}

	tr.Phase = PhaseCommitted
	b.mu.Lock()
	b.transitions[card.ID] = tr
	b.mu.Unlock()

	if b.onStatusChange != nil {
		b.onStatusChange(ctx, card)
	}
	return b.outcome(tr), nil
}

// revertLocked puts the card back to its source position if nobody moved it since.
func (b *Board) revertLocked(id uint, current models.ServiceStatus, src Position, previous models.ServiceStatus) bool {
	items := b.columns[current]
	for i, s := range items {
		if s.ID != id {
			continue
		}
		if s.Status != current {
			return false
		}
		b.columns[current] = remove(items, i)
		s.Status = previous
		b.columns[src.Bucket] = insert(b.columns[src.Bucket], src.Index, s)
		return true
	}
	return false
}

func (b *Board) outcome(tr Transition) Outcome {
	return Outcome{Transition: tr, Columns: b.Columns()}
}

func remove(items []models.Service, i int) []models.Service {
	out := make([]models.Service, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func insert(items []models.Service, i int, s models.Service) []models.Service {
	if i > len(items) {
		i = len(items)
	}
	out := make([]models.Service, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, s)
	return append(out, items[i:]...)
}
