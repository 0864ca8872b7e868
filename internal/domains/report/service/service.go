package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agendador/config"
	"agendador/infras/otel"
	"agendador/infras/s3"
	"agendador/internal/domains/report/model"
	"agendador/internal/domains/report/model/dto"
	resRepo "agendador/internal/domains/reservation/repository"
	roomModel "agendador/internal/domains/room/model"
	roomRepo "agendador/internal/domains/room/repository"
	"agendador/shared"
	"agendador/shared/cache"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	"agendador/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	roomPageSize   = 100
	cacheKeyByRoom = "by_room"
	fileTimeLayout = "20060102-150405"
)

type Report interface {
	Get(ctx context.Context) (dto.ReportResponse, error)
	Export(ctx context.Context, req dto.ExportRequest) (dto.ExportResponse, error)
}

type serviceImpl struct {
	repo     resRepo.Reservation
	roomRepo roomRepo.Room
	storage  s3.S3
	clock    timezone.Clock
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo resRepo.Reservation,
	roomRepo roomRepo.Room,
	storage s3.S3,
	clock timezone.Clock,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		storage:  storage,
		clock:    clock,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Get tallies reservations per room, listing rooms without reservations too.
func (s *serviceImpl) Get(ctx context.Context) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report.Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(constant.CacheKeyPrefixReport, cacheKeyByRoom)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for report")

		return res, nil
	}

	rooms, err := s.rooms(ctx)
	if err != nil {
		return res, err
	}

	counts, err := s.repo.CountByRoom(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations by room")

		return res, fmt.Errorf("failed to count reservations by room: %w", err)
	}

	rows := make([]model.Row, 0, len(rooms))
	index := make(map[string]int, len(rooms))

	for _, room := range rooms {
		index[room.ID] = len(rows)
		rows = append(rows, model.Row{RoomID: room.ID, RoomName: room.Name})
	}

	for _, count := range counts {
		i, ok := index[count.RoomID]
		if !ok {
			i = len(rows)
			rows = append(rows, model.Row{RoomID: count.RoomID, RoomName: count.RoomID})
		}

		rows[i].Total = count.Total
		rows[i].Pending = count.Pending
		rows[i].Approved = count.Approved
		rows[i].Rejected = count.Rejected
		rows[i].Cancelled = count.Cancelled
		res.Total += count.Total
	}

	res.Rooms = rows
	res.GeneratedAt = timezone.Format(s.clock.Now(), constant.DateFormat)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Export(ctx context.Context, req dto.ExportRequest) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report.Export")
	defer scope.End()
	defer scope.TraceIfError(&err)

	report, err := s.Get(ctx)
	if err != nil {
		return res, err
	}

	format := req.FormatOrDefault()

	data, contentType, err := render(format, report.Rooms)
	if err != nil {
		log.Error().Err(err).Str("format", format).Msg("failed to render report")

		return res, fmt.Errorf("failed to render report: %w", err)
	}

	now := s.clock.Now()
	fileName := fmt.Sprintf("reservations-%s.%s", now.UTC().Format(fileTimeLayout), format)

	url, err := s.storage.UploadFileBytes(ctx, model.ExportDirectory, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	res.URL = url
	res.Format = format
	res.GeneratedAt = timezone.Format(now, constant.DateFormat)

	log.Info().Str("url", url).Str("format", format).Msg("report exported")

	return res, nil
}

func (s *serviceImpl) rooms(ctx context.Context) ([]roomModel.Room, error) {
	var rooms []roomModel.Room

	for page := 1; ; page++ {
		batch, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{Page: page, PageSize: roomPageSize}, gDto.FilterGroup{},
			roomModel.FieldID, roomModel.FieldName)
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return nil, fmt.Errorf("failed to get rooms: %w", err)
		}

		rooms = append(rooms, batch...)

		if len(batch) < roomPageSize {
			return rooms, nil
		}
	}
}
