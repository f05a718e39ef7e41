package config

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// RouteCache memoizes travel-duration lookups so regenerate and
	// swap of the same plan do not re-bill identical legs.
	RouteCache *cache.Cache
)

const (
	routeCacheDuration   = 30 * time.Minute
	routeCleanupInterval = 1 * time.Hour
)

func InitCache() {
	RouteCache = cache.New(routeCacheDuration, routeCleanupInterval)
}

func GetCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += ":" + fmt.Sprintf("%v", param)
	}
	return key
}
