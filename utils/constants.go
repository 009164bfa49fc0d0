// File: utils/constants.go
package utils

import "time"

// DraftCachePrefix is the prefix used for Redis appointment-draft cache keys.
const DraftCachePrefix = "chat:draft:"

// DraftCacheTTL is the time-to-live for appointment-draft cache entries.
const DraftCacheTTL = 30 * time.Minute
