package standards

import (
	"sync"

	"github.com/voltcheck/voltcheck/internal/domain"
)

// configCache holds one immutable ValidationConfig per profile for the
// lifetime of the process. Population races are harmless: builders are
// pure, so concurrent first access stores value-equal configs and
// LoadOrStore keeps exactly one.
var configCache sync.Map // domain.StandardProfile -> ValidationConfig

// CachedConfig returns the ValidationConfig for a profile, building it
// on first access. Repeated calls return value-equal configs.
func CachedConfig(profile domain.StandardProfile) ValidationConfig {
	if v, ok := configCache.Load(profile); ok {
		return v.(ValidationConfig)
	}
	v, _ := configCache.LoadOrStore(profile, ConfigForProfile(profile))
	return v.(ValidationConfig)
}
