package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agendador/infras/otel"
	"agendador/infras/postgres"
	"agendador/internal/domains/reservation/model"
	"agendador/shared"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	"agendador/shared/logger"
	gRepo "agendador/shared/repository"
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrOverlap is returned when the store itself refuses a write because it
// would overlap a blocking reservation of the same room.
var ErrOverlap = errors.New("reservation overlaps a blocking reservation")

const (
	argConflictStart = "conflict_start"
	argConflictEnd   = "conflict_end"
	argExcludeID     = "exclude_id"
	argRangeFrom     = "range_from"
	argRangeTo       = "range_to"
)

const defaultOrder = model.TableName + "." + model.FieldStartTime + " ASC, " + model.TableName + "." + model.FieldID + " ASC"

// Tx is the unit of work handed to Atomic callbacks.
type Tx interface {
	// LockRoom serializes writers of roomID until the transaction ends.
	LockRoom(ctx context.Context, roomID string) error
	GetForUpdate(ctx context.Context, id string) (model.Reservation, error)
	HasConflict(ctx context.Context, query model.ConflictQuery) (bool, error)
	Insert(ctx context.Context, reservation model.Reservation) error
	Update(ctx context.Context, fields map[string]any, id string) error
}

type Reservation interface {
	GetByID(ctx context.Context, id string) (model.Reservation, error)
	List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Reservation, error)
	Count(ctx context.Context, filter model.ListFilter) (int, error)
	HasConflict(ctx context.Context, query model.ConflictQuery) (bool, error)
	CountByRoom(ctx context.Context) ([]model.RoomCount, error)
	Atomic(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel,
			gRepo.WithDefaultOrder(defaultOrder)),
		db:   db,
		otel: otel,
	}
}

// GetByID returns a zero Reservation when id is unknown.
func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) List(ctx context.Context, params gDto.QueryParams, filter model.ListFilter) ([]model.Reservation, error) {
	return r.GetAll(ctx, params, listFilterGroup(filter)) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter model.ListFilter) (int, error) {
	return r.Repository.Count(ctx, listFilterGroup(filter)) //nolint:wrapcheck
}

func (r *repositoryImpl) HasConflict(ctx context.Context, query model.ConflictQuery) (bool, error) {
	return r.Exist(ctx, conflictFilterGroup(query)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountByRoom(ctx context.Context) (res []model.RoomCount, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.CountByRoom")
	defer scope.End()
	defer scope.TraceIfError(&err)

	query := fmt.Sprintf(`SELECT %[1]s,
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE %[2]s = '%[3]s') AS pending,
		COUNT(*) FILTER (WHERE %[2]s = '%[4]s') AS approved,
		COUNT(*) FILTER (WHERE %[2]s = '%[5]s') AS rejected,
		COUNT(*) FILTER (WHERE %[2]s = '%[6]s') AS cancelled
		FROM %[7]s GROUP BY %[1]s ORDER BY %[1]s`,
		model.FieldRoomID, model.FieldStatus,
		model.StatusPending, model.StatusApproved, model.StatusRejected, model.StatusCancelled,
		model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res = []model.RoomCount{}

	if err = r.db.Read.SelectContext(ctx, &res, query); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to count reservations by room: %w", err)
	}

	return res, nil
}

// Atomic runs fn in one write transaction. Exclusion and unique violations
// raised by the store are reported as ErrOverlap.
func (r *repositoryImpl) Atomic(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Atomic")
	defer scope.End()

	err := r.Transaction(ctx, func(sqltx *sqlx.Tx) error {
		return fn(ctx, &txImpl{repo: r, tx: sqltx})
	})

	return translateError(err)
}

type txImpl struct {
	repo *repositoryImpl
	tx   *sqlx.Tx
}

func (t *txImpl) LockRoom(ctx context.Context, roomID string) error {
	if _, err := t.tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", roomID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room %s: %w", roomID, err)
	}

	return nil
}

func (t *txImpl) GetForUpdate(ctx context.Context, id string) (model.Reservation, error) {
	return t.repo.GetForUpdateTx(ctx, t.tx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (t *txImpl) HasConflict(ctx context.Context, query model.ConflictQuery) (bool, error) {
	return t.repo.ExistTx(ctx, t.tx, conflictFilterGroup(query)) //nolint:wrapcheck
}

func (t *txImpl) Insert(ctx context.Context, reservation model.Reservation) error {
	return t.repo.InsertTx(ctx, t.tx, reservation) //nolint:wrapcheck
}

func (t *txImpl) Update(ctx context.Context, fields map[string]any, id string) error {
	return t.repo.UpdateTx(ctx, t.tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeExclusionViolation, constant.PqErrorCodeUniqueViolation:
		return fmt.Errorf("%w: %s", ErrOverlap, pqErr.Message)
	default:
		return err
	}
}

func listFilterGroup(f model.ListFilter) gDto.FilterGroup {
	filters := []any{}

	if f.RequesterID != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldRequesterID, Value: f.RequesterID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.RoomID != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldRoomID, Value: f.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Status != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.HasRange() {
		filters = append(filters,
			gDto.Filter{ArgName: argRangeTo, Field: model.FieldStartTime, Value: f.To, Operator: gDto.FilterOperatorLess, Table: model.TableName},
			gDto.Filter{ArgName: argRangeFrom, Field: model.FieldEndTime, Value: f.From, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
		)
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

func conflictFilterGroup(q model.ConflictQuery) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldRoomID, Value: q.RoomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: []string{model.StatusPending, model.StatusApproved}, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		gDto.Filter{ArgName: argConflictEnd, Field: model.FieldStartTime, Value: q.End, Operator: gDto.FilterOperatorLess, Table: model.TableName},
		gDto.Filter{ArgName: argConflictStart, Field: model.FieldEndTime, Value: q.Start, Operator: gDto.FilterOperatorGreater, Table: model.TableName},
	}

	if q.ExcludeID != "" {
		filters = append(filters, gDto.Filter{ArgName: argExcludeID, Field: model.FieldID, Value: q.ExcludeID, Operator: gDto.FilterOperatorNotEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}
