package share

import (
	"time"

	ttlworker "github.com/FloatTech/ttl"

	"github.com/menulens/menulens-go/tool"
	"github.com/menulens/menulens-go/types"
)

const (
	// DefaultTTL keeps a translation around long enough for the user to
	// re-shoot or re-submit the same menu photo without paying for a second
	// model call.
	DefaultTTL = 15 * time.Minute
)

// Results caches completed translations keyed by the image's sha256 digest.
type Results struct {
	cache *ttlworker.Cache[string, *types.MenuTranslation]
}

func NewResults() *Results {
	return &Results{
		cache: ttlworker.NewCache[string, *types.MenuTranslation](DefaultTTL),
	}
}

func (r *Results) Get(key string) (*types.MenuTranslation, bool) {
	data := r.cache.Get(key)
	return data, data != nil
}

func (r *Results) Set(key string, translation *types.MenuTranslation) {
	if translation == nil {
		return
	}
	r.cache.Set(key, translation)
	tool.DefaultLogger.Debugf("Cached translation result: %s", key)
}
