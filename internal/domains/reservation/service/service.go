package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agendador/config"
	"agendador/infras/otel"
	nModel "agendador/internal/domains/notification/model"
	notification "agendador/internal/domains/notification/service"
	"agendador/internal/domains/reservation/model"
	"agendador/internal/domains/reservation/model/dto"
	"agendador/internal/domains/reservation/repository"
	roomModel "agendador/internal/domains/room/model"
	roomRepo "agendador/internal/domains/room/repository"
	userModel "agendador/internal/domains/user/model"
	userRepo "agendador/internal/domains/user/repository"
	"agendador/shared"
	"agendador/shared/broadcast"
	"agendador/shared/cache"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	"agendador/shared/failure"
	"agendador/shared/metrics"
	gModel "agendador/shared/model"
	"agendador/shared/timezone"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// overlapAttempts bounds how often a write is re-run after the store
// itself refused it for overlapping a concurrent writer.
const overlapAttempts = 2

const (
	msgNotAuthenticated  = "authentication required"
	msgNotFound          = "reservation not found"
	msgRoomNotFound      = "room not found"
	msgRequesterNotFound = "requester not found"
	msgRoomInactive      = "room is not active"
	msgConflict          = "room already booked for this period"
	msgAdminOnly         = "only admins can approve or reject reservations"
	msgNotOwner          = "only the requester or an admin can change this reservation"
	msgOnBehalf          = "only admins can create reservations for other users"
	msgDirectApproval    = "only admins can create approved reservations"
	msgRoomChange        = "only admins can move a reservation to another room"
	msgStatusChange      = "only admins can change the reservation status"
	msgNotPending        = "reservation is not pending"
	msgNotActive         = "reservation is no longer active"
	msgEnded             = "reservation already ended"
	msgInvalidInterval   = "end_time must be after start_time"
	msgTitleRequired     = "title is required"
	msgRoomRequired      = "room_id is required"
	msgEmptyUpdate       = "update request cannot be empty"
	msgInvalidTransition = "reservation cannot move from %s to %s"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Approve(ctx context.Context, id string) (dto.ReservationResponse, error)
	Reject(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) (dto.ReservationResponse, error)
	List(ctx context.Context, params gDto.QueryParams, req dto.ListReservationsRequest) (dto.ListReservationsResponse, error)
	Mine(ctx context.Context, params gDto.QueryParams, req dto.ListReservationsRequest) (dto.ListReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo       repository.Reservation
	roomRepo   roomRepo.Room
	userRepo   userRepo.User
	hub        broadcast.Hub
	dispatcher notification.Dispatcher
	clock      timezone.Clock
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Reservation,
	roomRepo roomRepo.Room,
	userRepo userRepo.User,
	hub broadcast.Hub,
	dispatcher notification.Dispatcher,
	clock timezone.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		userRepo:   userRepo,
		hub:        hub,
		dispatcher: dispatcher,
		clock:      clock,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		return res, failure.Unauthorized(msgNotAuthenticated) // nolint:wrapcheck
	}

	if err = validateCreate(req); err != nil {
		return res, err
	}

	requesterID := caller.ID
	if req.RequesterID != constant.Empty && req.RequesterID != caller.ID {
		if !caller.IsAdmin() {
			return res, failure.Forbidden(msgOnBehalf) // nolint:wrapcheck
		}

		if err = s.ensureRequester(ctx, req.RequesterID); err != nil {
			return res, err
		}

		requesterID = req.RequesterID
	}

	status := model.StatusPending
	if req.Status == model.StatusApproved {
		if !caller.IsAdmin() {
			return res, failure.Forbidden(msgDirectApproval) // nolint:wrapcheck
		}

		status = model.StatusApproved
	}

	if err = s.ensureRoomBookable(ctx, req.RoomID); err != nil {
		return res, err
	}

	reservation := req.ToModel(requesterID, status, caller.ID, s.clock.Now())

	scope.SetAttributes(map[string]any{
		constant.OtelReservationIDAttributeKey: reservation.ID,
		constant.OtelRoomIDAttributeKey:        reservation.RoomID,
		constant.OtelStartTimeAttributeKey:     reservation.StartTime,
		constant.OtelEndTimeAttributeKey:       reservation.EndTime,
	})

	err = s.atomic(ctx, func(ctx context.Context, tx repository.Tx) error {
		if err := tx.LockRoom(ctx, reservation.RoomID); err != nil {
			return err //nolint:wrapcheck
		}

		conflict, err := tx.HasConflict(ctx, model.ConflictQuery{
			RoomID: reservation.RoomID,
			Start:  reservation.StartTime,
			End:    reservation.EndTime,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		if conflict {
			metrics.IncConflict()

			return failure.Conflict(msgConflict) // nolint:wrapcheck
		}

		return tx.Insert(ctx, reservation) //nolint:wrapcheck
	})
	if err != nil {
		return res, s.writeError(err, "failed to create reservation")
	}

	res.FromModel(reservation)

	s.afterCommit(ctx, broadcast.TypeReservationCreated, res)
	s.notify(nModel.EventCreated, reservation, caller.ID)
	metrics.IncTransition(reservation.Status)

	log.Info().Str("reservation_id", reservation.ID).Str("room_id", reservation.RoomID).
		Str("status", reservation.Status).Msg("reservation created")

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.decide(ctx, id, model.StatusApproved, nModel.EventApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return s.decide(ctx, id, model.StatusRejected, nModel.EventRejected)
}

// decide moves a pending reservation to an admin decision.
func (s *serviceImpl) decide(ctx context.Context, id, status, eventType string) (res dto.ReservationResponse, err error) {
	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		return res, failure.Unauthorized(msgNotAuthenticated) // nolint:wrapcheck
	}

	if !caller.IsAdmin() {
		return res, failure.Forbidden(msgAdminOnly) // nolint:wrapcheck
	}

	var updated model.Reservation

	err = s.repo.Atomic(ctx, func(ctx context.Context, tx repository.Tx) error {
		current, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgNotFound) // nolint:wrapcheck
		}

		if current.Status != model.StatusPending {
			return failure.InvalidTransition(msgNotPending) // nolint:wrapcheck
		}

		updated, err = s.writeStatus(ctx, tx, current, status, caller.ID)

		return err
	})
	if err != nil {
		return res, s.writeError(err, "failed to "+statusVerb(status)+" reservation")
	}

	res.FromModel(updated)

	s.afterCommit(ctx, broadcast.TypeReservationUpdated, res)
	s.notify(eventType, updated, caller.ID)
	metrics.IncTransition(status)

	log.Info().Str("reservation_id", id).Str("status", status).Str("actor", caller.ID).Msg("reservation decided")

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(constant.OtelReservationIDAttributeKey, id)

	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		return res, failure.Unauthorized(msgNotAuthenticated) // nolint:wrapcheck
	}

	var updated model.Reservation

	err = s.repo.Atomic(ctx, func(ctx context.Context, tx repository.Tx) error {
		current, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgNotFound) // nolint:wrapcheck
		}

		if err := s.guardCancel(caller, current); err != nil {
			return err
		}

		updated, err = s.writeStatus(ctx, tx, current, model.StatusCancelled, caller.ID)

		return err
	})
	if err != nil {
		return res, s.writeError(err, "failed to cancel reservation")
	}

	res.FromModel(updated)

	s.afterCommit(ctx, broadcast.TypeReservationCancelled, res)
	s.notify(nModel.EventCancelled, updated, caller.ID)
	metrics.IncTransition(model.StatusCancelled)

	log.Info().Str("reservation_id", id).Str("actor", caller.ID).Msg("reservation cancelled")

	return res, nil
}

func (s *serviceImpl) guardCancel(caller gModel.Caller, current model.Reservation) error {
	if !caller.IsAdmin() && !current.OwnedBy(caller.ID) {
		return failure.Forbidden(msgNotOwner) // nolint:wrapcheck
	}

	if !current.Blocking() {
		return failure.InvalidTransition(msgNotActive) // nolint:wrapcheck
	}

	if current.Ended(s.clock.Now()) {
		return failure.AlreadyEnded(msgEnded) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(constant.OtelReservationIDAttributeKey, id)

	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		return res, failure.Unauthorized(msgNotAuthenticated) // nolint:wrapcheck
	}

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(msgEmptyUpdate) // nolint:wrapcheck
	}

	if req.Title != nil && isBlank(*req.Title) {
		return res, failure.BadRequestFromString(msgTitleRequired) // nolint:wrapcheck
	}

	if req.RoomID != nil && isBlank(*req.RoomID) {
		return res, failure.BadRequestFromString(msgRoomRequired) // nolint:wrapcheck
	}

	var current, updated model.Reservation

	err = s.atomic(ctx, func(ctx context.Context, tx repository.Tx) error {
		var err error

		current, err = tx.GetForUpdate(ctx, id)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if current.ID == constant.Empty {
			return failure.NotFound(msgNotFound) // nolint:wrapcheck
		}

		next := req.Apply(current)

		if err := s.guardUpdate(caller, current, next); err != nil {
			return err
		}

		if next.RoomID != current.RoomID {
			if err := s.ensureRoomBookable(ctx, next.RoomID); err != nil {
				return err
			}
		}

		moved := next.RoomID != current.RoomID ||
			!next.StartTime.Equal(current.StartTime) ||
			!next.EndTime.Equal(current.EndTime)

		if moved && next.Blocking() {
			if err := tx.LockRoom(ctx, next.RoomID); err != nil {
				return err //nolint:wrapcheck
			}

			conflict, err := tx.HasConflict(ctx, model.ConflictQuery{
				RoomID:    next.RoomID,
				Start:     next.StartTime,
				End:       next.EndTime,
				ExcludeID: current.ID,
			})
			if err != nil {
				return err //nolint:wrapcheck
			}

			if conflict {
				metrics.IncConflict()

				return failure.Conflict(msgConflict) // nolint:wrapcheck
			}
		}

		now := s.clock.Now()

		if err := tx.Update(ctx, dto.ChangedFields(current, next, caller.ID, now), current.ID); err != nil {
			return err //nolint:wrapcheck
		}

		next.ModifiedAt = now
		next.ModifiedBy = caller.ID
		updated = next

		return nil
	})
	if err != nil {
		return res, s.writeError(err, "failed to update reservation")
	}

	res.FromModel(updated)

	eventType := broadcast.TypeReservationUpdated
	if updated.Status == model.StatusCancelled {
		eventType = broadcast.TypeReservationCancelled
	}

	s.afterCommit(ctx, eventType, res)

	if updated.Status != current.Status {
		s.notify(statusEvent(updated.Status), updated, caller.ID)
		metrics.IncTransition(updated.Status)
	}

	log.Info().Str("reservation_id", id).Str("actor", caller.ID).Msg("reservation updated")

	return res, nil
}

// guardUpdate checks who may apply next over current. Status changes reuse
// the approve/reject and cancel guards.
func (s *serviceImpl) guardUpdate(caller gModel.Caller, current, next model.Reservation) error {
	if !caller.IsAdmin() && !current.OwnedBy(caller.ID) {
		return failure.Forbidden(msgNotOwner) // nolint:wrapcheck
	}

	if !current.Blocking() {
		return failure.InvalidTransition(msgNotActive) // nolint:wrapcheck
	}

	if next.RoomID != current.RoomID && !caller.IsAdmin() {
		return failure.Forbidden(msgRoomChange) // nolint:wrapcheck
	}

	if next.Status != current.Status {
		if next.Status == model.StatusCancelled {
			if current.Ended(s.clock.Now()) {
				return failure.AlreadyEnded(msgEnded) // nolint:wrapcheck
			}
		} else if !caller.IsAdmin() {
			return failure.Forbidden(msgStatusChange) // nolint:wrapcheck
		}

		if !model.CanTransition(current.Status, next.Status) {
			return failure.InvalidTransition(fmt.Sprintf(msgInvalidTransition, current.Status, next.Status)) // nolint:wrapcheck
		}
	}

	if !next.StartTime.Before(next.EndTime) {
		return failure.BadRequestFromString(msgInvalidInterval) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, req dto.ListReservationsRequest) (res dto.ListReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(&err)

	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		return res, failure.Unauthorized(msgNotAuthenticated) // nolint:wrapcheck
	}

	return s.list(ctx, params, req)
}

func (s *serviceImpl) Mine(ctx context.Context, params gDto.QueryParams, req dto.ListReservationsRequest) (res dto.ListReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Mine")
	defer scope.End()
	defer scope.TraceIfError(&err)

	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		return res, failure.Unauthorized(msgNotAuthenticated) // nolint:wrapcheck
	}

	req.RequesterID = caller.ID

	return s.list(ctx, params, req)
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, req dto.ListReservationsRequest) (res dto.ListReservationsResponse, err error) {
	filter := model.ListFilter{
		RequesterID: req.RequesterID,
		RoomID:      req.RoomID,
		Status:      req.Status,
	}

	if req.Date != constant.Empty {
		filter.From, filter.To, err = timezone.AppDayRange(req.Date)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	params = s.normalizePage(params)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.List(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservations")

		return res, fmt.Errorf("failed to list reservations: %w", err)
	}

	res.FromModels(models, total, params)

	return res, nil
}

// normalizePage clamps paging to at least 1 and pins the order to start time.
func (s *serviceImpl) normalizePage(params gDto.QueryParams) gDto.QueryParams {
	if params.Page < 1 {
		params.Page = constant.DefaultValuePage
	}

	if params.PageSize == 0 {
		params.PageSize = s.cfg.Reservation.DefaultPageSize
	}

	if params.PageSize < 1 {
		params.PageSize = 1
	}

	params.SortBy = constant.Empty
	params.SortDir = constant.Empty

	return params
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	caller := gModel.CallerFromContext(ctx)
	if caller.IsZero() {
		return res, failure.Unauthorized(msgNotAuthenticated) // nolint:wrapcheck
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(msgNotFound) // nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if isBlank(req.RoomID) {
		return res, failure.BadRequestFromString(msgRoomRequired) // nolint:wrapcheck
	}

	if !req.StartTime.Before(req.EndTime) {
		return res, failure.BadRequestFromString(msgInvalidInterval) // nolint:wrapcheck
	}

	conflict, err := s.repo.HasConflict(ctx, model.ConflictQuery{
		RoomID:    req.RoomID,
		Start:     req.StartTime.UTC(),
		End:       req.EndTime.UTC(),
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservation conflict")

		return res, fmt.Errorf("failed to check reservation conflict: %w", err)
	}

	res.RoomID = req.RoomID
	res.StartTime = timezone.Format(req.StartTime, constant.DateFormat)
	res.EndTime = timezone.Format(req.EndTime, constant.DateFormat)
	res.Available = !conflict

	return res, nil
}

// atomic runs fn in a store transaction, re-running it once when the store
// refuses the write for overlapping a concurrent writer.
func (s *serviceImpl) atomic(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	var err error

	for attempt := 1; attempt <= overlapAttempts; attempt++ {
		err = s.repo.Atomic(ctx, fn)
		if !errors.Is(err, repository.ErrOverlap) {
			return err //nolint:wrapcheck
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("reservation write refused by store, retrying")
	}

	metrics.IncConflict()

	return failure.Conflict(msgConflict) // nolint:wrapcheck
}

func (s *serviceImpl) writeStatus(ctx context.Context, tx repository.Tx, current model.Reservation, status, actor string) (model.Reservation, error) {
	if !model.CanTransition(current.Status, status) {
		return current, failure.InvalidTransition(fmt.Sprintf(msgInvalidTransition, current.Status, status)) // nolint:wrapcheck
	}

	next := current
	next.Status = status
	next.ModifiedAt = s.clock.Now()
	next.ModifiedBy = actor

	if err := tx.Update(ctx, dto.ChangedFields(current, next, actor, next.ModifiedAt), current.ID); err != nil {
		return current, err //nolint:wrapcheck
	}

	return next, nil
}

func (s *serviceImpl) ensureRoomBookable(ctx context.Context, roomID string) error {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName),
		roomModel.FieldID, roomModel.FieldActive)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if !room.Found() {
		return failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	if !room.Bookable() {
		return failure.Unavailable(msgRoomInactive) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ensureRequester(ctx context.Context, requesterID string) error {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(requesterID, userModel.FieldID, userModel.TableName), userModel.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requester")

		return fmt.Errorf("failed to get requester: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound(msgRequesterNotFound) // nolint:wrapcheck
	}

	return nil
}

// writeError passes typed failures through and wraps anything else as internal.
func (s *serviceImpl) writeError(err error, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return fail
	}

	log.Error().Err(err).Msg(msg)

	return fmt.Errorf("%s: %w", msg, err)
}

// afterCommit publishes the change and drops cached reports. Neither can fail the caller.
func (s *serviceImpl) afterCommit(ctx context.Context, eventType string, res dto.ReservationResponse) {
	s.hub.Publish(eventType, res)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyPrefixReport)
	}()
}

func (s *serviceImpl) notify(eventType string, r model.Reservation, actorID string) {
	if eventType == constant.Empty {
		return
	}

	s.dispatcher.Dispatch(nModel.Event{
		EventType:     eventType,
		ReservationID: r.ID,
		RoomID:        r.RoomID,
		RequesterID:   r.RequesterID,
		NewStatus:     r.Status,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Title:         r.Title,
		ActorID:       actorID,
	})
}

func validateCreate(req dto.CreateReservationRequest) error {
	if isBlank(req.RoomID) {
		return failure.BadRequestFromString(msgRoomRequired) // nolint:wrapcheck
	}

	if isBlank(req.Title) {
		return failure.BadRequestFromString(msgTitleRequired) // nolint:wrapcheck
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() || !req.StartTime.Before(req.EndTime) {
		return failure.BadRequestFromString(msgInvalidInterval) // nolint:wrapcheck
	}

	return nil
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == constant.Empty
}

func statusEvent(status string) string {
	switch status {
	case model.StatusApproved:
		return nModel.EventApproved
	case model.StatusRejected:
		return nModel.EventRejected
	case model.StatusCancelled:
		return nModel.EventCancelled
	default:
		return constant.Empty
	}
}

func statusVerb(status string) string {
	if status == model.StatusApproved {
		return "approve"
	}

	return "reject"
}
