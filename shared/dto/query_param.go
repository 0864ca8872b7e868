package dto

import (
	"agendador/shared/constant"
	"agendador/shared/failure"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page     int    `json:"page"      validate:"omitempty"`
	PageSize int    `json:"page_size" validate:"omitempty"`
	SortBy   string `json:"sort_by"   validate:"omitempty"`
	SortDir  string `json:"sort_dir"  validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// Missing values fall back to page 1 and defaultPageSize; numeric values
// below 1 are clamped to 1. Non-numeric values are rejected.
//
//	q := &dto.QueryParams{}
//	err := q.FromRequest(req, cfg.Reservation.DefaultPageSize)
func (q *QueryParams) FromRequest(r *http.Request, defaultPageSize int) error {
	queryParams := r.URL.Query()

	q.Page = constant.DefaultValuePage
	q.PageSize = defaultPageSize

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	size := queryParams.Get(constant.RequestParamPageSize)
	if size == "" {
		size = queryParams.Get(constant.RequestParamLimit)
	}

	if size != "" {
		sizeInt, err := strconv.Atoi(size)
		if err != nil {
			return failure.InvalidPageSizeParam
		}

		q.PageSize = sizeInt
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	q.Clamp(defaultPageSize)

	return nil
}

// Clamp forces Page and PageSize to at least 1. A zero PageSize takes defaultPageSize first.
func (q *QueryParams) Clamp(defaultPageSize int) {
	if q.PageSize == 0 {
		q.PageSize = defaultPageSize
	}

	if q.Page < 1 {
		q.Page = 1
	}

	if q.PageSize < 1 {
		q.PageSize = 1
	}
}

// Offset is the number of rows skipped before the current page.
func (q *QueryParams) Offset() int {
	return (q.Page - 1) * q.PageSize
}
