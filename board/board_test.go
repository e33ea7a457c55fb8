package board

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LarzzCode/LarGarage/models"
)

type updateCall struct {
	ID     uint
	Status models.ServiceStatus
}

type fakeUpdater struct {
	mu    sync.Mutex
	calls []updateCall
	err   error
}

func (f *fakeUpdater) UpdateStatus(_ context.Context, id uint, status models.ServiceStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, updateCall{id, status})
	return f.err
}

func ids(items []models.Service) []uint {
	out := []uint{}
	for _, s := range items {
		out = append(out, s.ID)
	}
	return out
}

func column(cols []Column, status models.ServiceStatus) []models.Service {
	for _, c := range cols {
		if c.Status == status {
			return c.Items
		}
	}
	return nil
}

func TestLoadPartitionsAndFallsBackToPending(t *testing.T) {
	b := New(&fakeUpdater{})
	b.Load([]models.Service{
		{ID: 1, Status: models.StatusSelesai},
		{ID: 2, Status: "Batal"},
		{ID: 3, Status: models.StatusPending},
		{ID: 4, Status: models.StatusProses},
	})

	cols := b.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, models.StatusPending, cols[0].Status)
	assert.Equal(t, models.StatusProses, cols[1].Status)
	assert.Equal(t, models.StatusSelesai, cols[2].Status)

	assert.Equal(t, []uint{2, 3}, ids(cols[0].Items))
	assert.Equal(t, models.ServiceStatus("Batal"), cols[0].Items[0].Status)
	assert.Equal(t, []uint{4}, ids(cols[1].Items))
	assert.Equal(t, []uint{1}, ids(cols[2].Items))
}

func TestCrossColumnMoveCommits(t *testing.T) {
	up := &fakeUpdater{}
	var changed []uint
	b := New(up, WithOnStatusChange(func(_ context.Context, s models.Service) {
		changed = append(changed, s.ID)
	}))
	b.Load([]models.Service{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusProses},
	})

	out, err := b.Move(context.Background(), DragResult{
		DraggableID: "1",
		Source:      Position{Bucket: models.StatusPending, Index: 0},
		Destination: &Position{Bucket: models.StatusSelesai, Index: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, PhaseCommitted, out.Phase)

	assert.Empty(t, column(out.Columns, models.StatusPending))
	assert.Equal(t, []uint{2}, ids(column(out.Columns, models.StatusProses)))
	selesai := column(out.Columns, models.StatusSelesai)
	require.Len(t, selesai, 1)
	assert.Equal(t, uint(1), selesai[0].ID)
	assert.Equal(t, models.StatusSelesai, selesai[0].Status)

	assert.Equal(t, []updateCall{{1, models.StatusSelesai}}, up.calls)
	assert.Equal(t, []uint{1}, changed)
}

func TestCrossColumnMoveFailureKeepsOptimisticState(t *testing.T) {
	up := &fakeUpdater{err: errors.New("connection refused")}
	var alerts []string
	b := New(up, WithAlerter(AlertFunc(func(_ context.Context, _ uint, msg string) {
		alerts = append(alerts, msg)
	})), WithOnStatusChange(func(context.Context, models.Service) {
		t.Fatal("callback must not run on failure")
	}))
	b.Load([]models.Service{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusProses},
	})

	out, err := b.Move(context.Background(), DragResult{
		Source:      Position{Bucket: models.StatusPending, Index: 0},
		Destination: &Position{Bucket: models.StatusSelesai, Index: 0},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRemoteUpdate))
	assert.Equal(t, PhaseFailed, out.Phase)
	assert.Equal(t, []string{MsgMoveFailed}, alerts)
	assert.Len(t, up.calls, 1)

	cols := b.Columns()
	assert.Empty(t, column(cols, models.StatusPending))
	selesai := column(cols, models.StatusSelesai)
	require.Len(t, selesai, 1)
	assert.Equal(t, models.StatusSelesai, selesai[0].Status)

	trs := b.Transitions()
	require.Len(t, trs, 1)
	assert.Equal(t, PhaseFailed, trs[0].Phase)
}

func TestCrossColumnMoveFailureWithRollback(t *testing.T) {
	up := &fakeUpdater{err: errors.New("timeout")}
	b := New(up, WithRollback(true))
	b.Load([]models.Service{
		{ID: 1, Status: models.StatusPending},
		{ID: 3, Status: models.StatusPending},
		{ID: 2, Status: models.StatusProses},
	})

	out, err := b.Move(context.Background(), DragResult{
		Source:      Position{Bucket: models.StatusPending, Index: 1},
		Destination: &Position{Bucket: models.StatusProses, Index: 0},
	})
	require.Error(t, err)
	assert.Equal(t, PhaseRolledBack, out.Phase)

	pending := column(out.Columns, models.StatusPending)
	assert.Equal(t, []uint{1, 3}, ids(pending))
	assert.Equal(t, models.StatusPending, pending[1].Status)
	assert.Equal(t, []uint{2}, ids(column(out.Columns, models.StatusProses)))
}

func TestSameColumnMoveIsLocalOnly(t *testing.T) {
	up := &fakeUpdater{}
	b := New(up)
	b.Load([]models.Service{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusPending},
		{ID: 3, Status: models.StatusPending},
	})

	out, err := b.Move(context.Background(), DragResult{
		Source:      Position{Bucket: models.StatusPending, Index: 0},
		Destination: &Position{Bucket: models.StatusPending, Index: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, PhaseReordered, out.Phase)
	assert.Equal(t, []uint{2, 3, 1}, ids(column(out.Columns, models.StatusPending)))
	assert.Empty(t, up.calls)
}

func TestNoopMoves(t *testing.T) {
	up := &fakeUpdater{}
	b := New(up)
	b.Load([]models.Service{{ID: 1, Status: models.StatusPending}})

	out, err := b.Move(context.Background(), DragResult{
		Source: Position{Bucket: models.StatusPending, Index: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, PhaseNoop, out.Phase)

	out, err = b.Move(context.Background(), DragResult{
		Source:      Position{Bucket: models.StatusPending, Index: 0},
		Destination: &Position{Bucket: models.StatusPending, Index: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, PhaseNoop, out.Phase)
	assert.Empty(t, up.calls)
}

func TestInvalidMoves(t *testing.T) {
	b := New(&fakeUpdater{})
	b.Load([]models.Service{{ID: 1, Status: models.StatusPending}})

	_, err := b.Move(context.Background(), DragResult{
		Source:      Position{Bucket: models.StatusPending, Index: 0},
		Destination: &Position{Bucket: "Batal", Index: 0},
	})
	assert.True(t, errors.Is(err, ErrUnknownBucket))

	_, err = b.Move(context.Background(), DragResult{
		Source:      Position{Bucket: models.StatusPending, Index: 3},
		Destination: &Position{Bucket: models.StatusProses, Index: 0},
	})
	assert.True(t, errors.Is(err, ErrInvalidPosition))

	_, err = b.Move(context.Background(), DragResult{
		DraggableID: "9",
		Source:      Position{Bucket: models.StatusPending, Index: 0},
		Destination: &Position{Bucket: models.StatusProses, Index: 0},
	})
	assert.True(t, errors.Is(err, ErrInvalidPosition))
}

func TestDestinationIndexPastEndAppends(t *testing.T) {
	b := New(&fakeUpdater{})
	b.Load([]models.Service{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusProses},
	})
	out, err := b.Move(context.Background(), DragResult{
		Source:      Position{Bucket: models.StatusPending, Index: 0},
		Destination: &Position{Bucket: models.StatusProses, Index: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 1}, ids(column(out.Columns, models.StatusProses)))
}
