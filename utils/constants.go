// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization keys.
const AuthCachePrefix = "auth:"

// RevokedTokenPrefix namespaces revoked token hashes under the auth prefix.
const RevokedTokenPrefix = AuthCachePrefix + "revoked:"

// RevokedTokenTTL bounds how long a revocation entry is kept. It should not be
// shorter than the longest token lifetime issued.
const RevokedTokenTTL = 7 * 24 * time.Hour
