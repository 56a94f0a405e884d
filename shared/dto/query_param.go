package dto

import (
	"net/http"
	"strconv"
	"strings"

	"mesa/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With defaultRequest set, missing page/limit fall back to the configured
// defaults so unbounded listings never reach the database.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// RangeParams carries the optional date window and free-text search shared by
// the log listing endpoints.
type RangeParams struct {
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to"   validate:"omitempty,datetime=2006-01-02"`
	Search   string `json:"q"         validate:"omitempty,max=100"`
}

func (p *RangeParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	p.DateFrom = queryParams.Get(constant.RequestParamDateFrom)
	p.DateTo = queryParams.Get(constant.RequestParamDateTo)
	p.Search = queryParams.Get(constant.RequestParamSearch)
}

// ToFilters expands the range params into repository filters. The search term
// becomes an OR group of case-insensitive LIKE filters over the allow-listed
// columns; arbitrary client-supplied column names are never interpolated.
func (p *RangeParams) ToFilters(dateField, table string, searchFields []string) []any {
	filters := []any{}

	if p.DateFrom != "" {
		filters = append(filters, Filter{
			ArgName:  "date_from",
			Field:    dateField,
			Operator: FilterOperatorGreaterEq,
			Value:    p.DateFrom,
			Table:    table,
		})
	}

	if p.DateTo != "" {
		filters = append(filters, Filter{
			ArgName:  "date_to",
			Field:    dateField,
			Operator: FilterOperatorLessEq,
			Value:    p.DateTo,
			Table:    table,
		})
	}

	if p.Search != "" && len(searchFields) > 0 {
		searchGroup := FilterGroup{Operator: FilterGroupOperatorOr}

		for _, field := range searchFields {
			searchGroup.Filters = append(searchGroup.Filters, Filter{
				ArgName:  "search_" + field,
				Field:    field,
				Operator: FilterOperatorLike,
				Value:    p.Search,
				Table:    table,
			})
		}

		filters = append(filters, searchGroup)
	}

	return filters
}
