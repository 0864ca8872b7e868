package shared

import (
	"agendador/shared/cache"
	"agendador/shared/constant"
	"agendador/shared/dto"
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, pageSize int) (res int) {
	if total == 0 || pageSize <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return res
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
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
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from pagination and an arbitrary filter value.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter any) string {
	raw, err := json.Marshal(filter)
	if err != nil {
		raw = fmt.Appendf(nil, "%v", filter)
	}

	sum := sha1.Sum(raw) //nolint:gosec

	return BuildCacheKey(prefix,
		fmt.Sprintf("p%d", params.Page),
		fmt.Sprintf("s%d", params.PageSize),
		hex.EncodeToString(sum[:]),
	)
}

// InvalidateCaches removes every key under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
