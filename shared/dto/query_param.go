package dto

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"rental/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// Sort is one ORDER BY term.
type Sort struct {
	Table string
	Field string
	Dir   string
}

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	// Sorts is the ordering applied when SortBy is empty, and the tie breakers after SortBy otherwise.
	Sorts []Sort `json:"-"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// With `defaultRequest` set, Page and Limit fall back to their defaults when absent.
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

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
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

// OrderByClause builds the ORDER BY clause. A caller supplied SortBy must be one of columns,
// otherwise an error is returned and nothing is interpolated into the query.
func (q *QueryParams) OrderByClause(table string, columns []string) (string, error) {
	terms := []string{}

	if q.SortBy != "" {
		if !slices.Contains(columns, q.SortBy) {
			return "", fmt.Errorf("unknown sort column %q", q.SortBy)
		}

		terms = append(terms, QuoteColumn(table, q.SortBy)+" "+direction(q.SortDir))
	}

	for _, s := range q.Sorts {
		if s.Field == q.SortBy && s.Table == table {
			continue
		}

		terms = append(terms, QuoteColumn(s.Table, s.Field)+" "+direction(s.Dir))
	}

	if len(terms) == 0 {
		return "", nil
	}

	return " ORDER BY " + strings.Join(terms, ", "), nil
}

func direction(dir string) string {
	if strings.ToUpper(dir) == SortDirAsc {
		return SortDirAsc
	}

	return SortDirDesc
}
