package shared_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"rental/shared"
	"rental/shared/cache/mocks"
	"rental/shared/constant"
	"rental/shared/dto"
	"rental/shared/failure"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "valid true string", input: "true", expected: boolPtr(true)},
		{name: "valid 0 string", input: "0", expected: boolPtr(false)},
		{name: "valid on style T", input: "T", expected: boolPtr(true)},
		{name: "invalid string returns nil", input: "yes please", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestColumnValues(t *testing.T) {
	type property struct {
		ID           int64           `db:"property_id" generated:"true"`
		Street       string          `db:"street"`
		Price        decimal.Decimal `db:"price"`
		Availability bool            `db:"availability"`
		CrimeRate    *string         `db:"crime_rate" table:"Neighborhood"`
		Scratch      string
	}

	result := shared.ColumnValues(property{
		ID:           9,
		Street:       "1 Main St",
		Price:        decimal.RequireFromString("1500.00"),
		Availability: false,
	})

	assert.Equal(t, map[string]any{
		"street":       "1 Main St",
		"price":        decimal.RequireFromString("1500.00"),
		"availability": false,
	}, result)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(42), "property_id", "Property Info")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "property_id",
				Value:    int64(42),
				Operator: dto.FilterOperatorEq,
				Table:    "Property Info",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "property:get:42", shared.BuildCacheKey("property:get", 42))
	assert.Equal(t, "ratelimit", shared.BuildCacheKey("ratelimit"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	q1 := map[string]string{"city": "chicago"}
	q2 := map[string]string{"city": "boston"}

	key1 := shared.BuildCacheKeyWithQuery("property:search", q1)
	key2 := shared.BuildCacheKeyWithQuery("property:search", q2)

	assert.True(t, strings.HasPrefix(key1, "property:search:"))
	assert.NotEqual(t, key1, key2)
	assert.Equal(t, key1, shared.BuildCacheKeyWithQuery("property:search", map[string]string{"city": "chicago"}))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := mocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Clear(gomock.Any(), "property:search*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), "property:list*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), redisCache, "property:search")
	shared.InvalidateCaches(context.Background(), redisCache, "property:list")
}

func boolPtr(b bool) *bool {
	return &b
}

func TestSessionEmail(t *testing.T) {
	_, err := shared.SessionEmail(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "ada@example.com")
	email, err := shared.SessionEmail(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)
}

func TestParseID(t *testing.T) {
	id, err := shared.ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, value := range []string{"", "0", "-3", "abc"} {
		_, err = shared.ParseID(value)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err), value)
	}
}
