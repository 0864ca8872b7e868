package repository

import (
	"agendador/internal/domains/reservation/model"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// memoryStore keeps reservations in process. Atomic callbacks run one at a
// time and their writes become visible only on success, so it honors the
// same no-overlap guarantee as the Postgres store.
type memoryStore struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	rows map[string]model.Reservation
}

func NewInMemory() Reservation {
	return &memoryStore{rows: make(map[string]model.Reservation)}
}

func (m *memoryStore) GetByID(_ context.Context, id string) (model.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.rows[id], nil
}

func (m *memoryStore) List(_ context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Reservation, error) {
	matched := m.filtered(filter)

	if params.PageSize <= 0 {
		return matched, nil
	}

	skipped := max(params.Page, 1) - 1

	// compare in pages first so the offset product cannot overflow
	if skipped > len(matched)/params.PageSize {
		return []model.Reservation{}, nil
	}

	offset := skipped * params.PageSize
	if offset >= len(matched) {
		return []model.Reservation{}, nil
	}

	end := min(offset+params.PageSize, len(matched))

	return matched[offset:end], nil
}

func (m *memoryStore) Count(_ context.Context, filter model.ListFilter) (int, error) {
	return len(m.filtered(filter)), nil
}

func (m *memoryStore) HasConflict(_ context.Context, query model.ConflictQuery) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return conflicts(m.rows, query), nil
}

func (m *memoryStore) CountByRoom(_ context.Context) ([]model.RoomCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	byRoom := map[string]*model.RoomCount{}

	for _, row := range m.rows {
		count, ok := byRoom[row.RoomID]
		if !ok {
			count = &model.RoomCount{RoomID: row.RoomID}
			byRoom[row.RoomID] = count
		}

		count.Total++

		switch row.Status {
		case model.StatusPending:
			count.Pending++
		case model.StatusApproved:
			count.Approved++
		case model.StatusRejected:
			count.Rejected++
		case model.StatusCancelled:
			count.Cancelled++
		}
	}

	res := make([]model.RoomCount, 0, len(byRoom))
	for _, roomID := range slices.Sorted(maps.Keys(byRoom)) {
		res = append(res, *byRoom[roomID])
	}

	return res, nil
}

func (m *memoryStore) Atomic(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted: %w", err)
	}

	tx := &memoryTx{store: m, writes: map[string]model.Reservation{}}

	if err := fn(ctx, tx); err != nil {
		return err
	}

	return m.commit(tx.writes)
}

func (m *memoryStore) commit(writes map[string]model.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	merged := maps.Clone(m.rows)
	maps.Copy(merged, writes)

	for id, row := range writes {
		if !row.Blocking() {
			continue
		}

		if conflicts(merged, model.ConflictQuery{RoomID: row.RoomID, Start: row.StartTime, End: row.EndTime, ExcludeID: id}) {
			return fmt.Errorf("%w: %s", ErrOverlap, id)
		}
	}

	m.rows = merged

	return nil
}

func (m *memoryStore) filtered(filter model.ListFilter) []model.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := []model.Reservation{}

	for _, row := range m.rows {
		if filter.Match(row) {
			res = append(res, row)
		}
	}

	slices.SortFunc(res, func(a, b model.Reservation) int {
		if c := a.StartTime.Compare(b.StartTime); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})

	return res
}

type memoryTx struct {
	store  *memoryStore
	writes map[string]model.Reservation
}

func (t *memoryTx) LockRoom(_ context.Context, _ string) error {
	return nil
}

func (t *memoryTx) GetForUpdate(_ context.Context, id string) (model.Reservation, error) {
	if row, ok := t.writes[id]; ok {
		return row, nil
	}

	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	return t.store.rows[id], nil
}

func (t *memoryTx) HasConflict(_ context.Context, query model.ConflictQuery) (bool, error) {
	t.store.mu.RLock()
	view := maps.Clone(t.store.rows)
	t.store.mu.RUnlock()

	maps.Copy(view, t.writes)

	return conflicts(view, query), nil
}

func (t *memoryTx) Insert(_ context.Context, reservation model.Reservation) error {
	t.writes[reservation.ID] = reservation

	return nil
}

func (t *memoryTx) Update(ctx context.Context, fields map[string]any, id string) error {
	row, err := t.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if row.ID == constant.Empty {
		return fmt.Errorf("failed to update reservation %s: not found", id)
	}

	for col, value := range fields {
		if err := assign(&row, col, value); err != nil {
			return err
		}
	}

	t.writes[id] = row

	return nil
}

func assign(row *model.Reservation, col string, value any) error {
	var ok bool

	switch col {
	case model.FieldTitle:
		row.Title, ok = value.(string)
	case model.FieldDescription:
		row.Description, ok = value.(string)
	case model.FieldRoomID:
		row.RoomID, ok = value.(string)
	case model.FieldStatus:
		row.Status, ok = value.(string)
	case model.FieldStartTime:
		row.StartTime, ok = value.(time.Time)
	case model.FieldEndTime:
		row.EndTime, ok = value.(time.Time)
	case constant.FieldModifiedAt:
		row.ModifiedAt, ok = value.(time.Time)
	case constant.FieldModifiedBy:
		row.ModifiedBy, ok = value.(string)
	default:
		return fmt.Errorf("unknown reservation column %q", col)
	}

	if !ok {
		return fmt.Errorf("invalid value %T for reservation column %q", value, col)
	}

	return nil
}

func conflicts(rows map[string]model.Reservation, q model.ConflictQuery) bool {
	for id, row := range rows {
		if id == q.ExcludeID || row.RoomID != q.RoomID || !row.Blocking() {
			continue
		}

		if model.Overlaps(row.StartTime, row.EndTime, q.Start, q.End) {
			return true
		}
	}

	return false
}
