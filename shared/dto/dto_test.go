package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental/shared/constant"
	"rental/shared/dto"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "price",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "price", SortDir: "ASC"},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "with invalid page and negative limit",
			queryParams:    map[string]string{"page": "invalid", "limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with unknown sort direction",
			queryParams:    map[string]string{"sort_dir": "sideways"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/properties")
			require.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			require.NoError(t, err)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestQueryParams_OrderByClause(t *testing.T) {
	columns := []string{"property_id", "price", "city"}

	t.Run("default sorts only", func(t *testing.T) {
		q := dto.QueryParams{Sorts: []dto.Sort{
			{Table: "Property Info", Field: "price", Dir: dto.SortDirAsc},
			{Table: "Property Info", Field: "property_id", Dir: dto.SortDirDesc},
		}}

		clause, err := q.OrderByClause("Property Info", columns)
		require.NoError(t, err)
		assert.Equal(t, ` ORDER BY "Property Info"."price" ASC, "Property Info"."property_id" DESC`, clause)
	})

	t.Run("caller sort first then tie breaker", func(t *testing.T) {
		q := dto.QueryParams{SortBy: "city", SortDir: dto.SortDirAsc, Sorts: []dto.Sort{
			{Table: "Property Info", Field: "property_id", Dir: dto.SortDirDesc},
		}}

		clause, err := q.OrderByClause("Property Info", columns)
		require.NoError(t, err)
		assert.Equal(t, ` ORDER BY "Property Info"."city" ASC, "Property Info"."property_id" DESC`, clause)
	})

	t.Run("unknown column rejected", func(t *testing.T) {
		q := dto.QueryParams{SortBy: "price; DROP TABLE \"User\""}

		clause, err := q.OrderByClause("Property Info", columns)
		require.Error(t, err)
		assert.Empty(t, clause)
	})

	t.Run("no ordering", func(t *testing.T) {
		q := dto.QueryParams{}

		clause, err := q.OrderByClause("Property Info", columns)
		require.NoError(t, err)
		assert.Empty(t, clause)
	})
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
		args     map[string]any
	}{
		{
			name:     "like is case insensitive substring",
			filter:   dto.Filter{Table: "Property Info", Field: "city", Value: "Chi", Operator: dto.FilterOperatorLike},
			expected: `LOWER("Property Info"."city") LIKE LOWER(:city)`,
			args:     map[string]any{"city": "%Chi%"},
		},
		{
			name:     "less or equal keeps decimal argument",
			filter:   dto.Filter{Table: "Property Info", Field: "price", Value: decimal.RequireFromString("1500.00"), Operator: dto.FilterOperatorLessEq, ArgName: "max_price"},
			expected: `"Property Info"."price" <= :max_price`,
			args:     map[string]any{"max_price": decimal.RequireFromString("1500.00")},
		},
		{
			name:     "in with slice",
			filter:   dto.Filter{Field: "type", Value: []string{"house", "apartment"}, Operator: dto.FilterOperatorIn},
			expected: `"type" IN (:type_0, :type_1)`,
			args:     map[string]any{"type_0": "house", "type_1": "apartment"},
		},
		{
			name:     "is null",
			filter:   dto.Filter{Table: "Neighborhood", Field: "property_id", Operator: dto.FilterIsNull},
			expected: `"Neighborhood"."property_id" IS NULL`,
			args:     map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()
			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "availability", Value: true, Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "state", Value: "il", Operator: dto.FilterOperatorLike},
		},
	}

	where, args := group.GetWhereClause()
	assert.Equal(t, `("availability" = :availability AND LOWER("state") LIKE LOWER(:state))`, where)
	assert.Equal(t, map[string]any{"availability": true, "state": "%il%"}, args)

	empty := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}
