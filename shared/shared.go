package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"rental/shared/cache"
	"rental/shared/constant"
	"rental/shared/dto"
	"rental/shared/failure"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// ColumnValues maps every db tagged field of a struct to its value, zero values included.
// Fields tagged generated or taken from another table are skipped.
func ColumnValues(data any) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	fields := make(map[string]any)

	for index := range val.NumField() {
		tag := typ.Field(index)

		fieldName := tag.Tag.Get("db")
		if fieldName == "" || fieldName == "-" || tag.Tag.Get("generated") == "true" || tag.Tag.Get("table") != "" {
			continue
		}

		fields[fieldName] = val.Field(index).Interface()
	}

	return fields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...any) string {
	key := make([]string, 0, len(parts)+1)
	key = append(key, prefix)

	for _, part := range parts {
		key = append(key, fmt.Sprint(part))
	}

	return strings.Join(key, ":")
}

// BuildCacheKeyWithQuery derives a stable key from any JSON encodable query.
func BuildCacheKeyWithQuery(prefix string, query ...any) string {
	payload, err := json.Marshal(query)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to encode cache query")

		return BuildCacheKey(prefix, fmt.Sprintf("%v", query))
	}

	sum := sha256.Sum256(payload)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// SessionEmail returns the signed in user's email put on ctx by the auth middleware.
func SessionEmail(ctx context.Context) (string, error) {
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if email == "" {
		return "", failure.Unauthorized("unauthorized")
	}

	return email, nil
}

// ParseID parses a positive numeric path id.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid id")
	}

	return id, nil
}
