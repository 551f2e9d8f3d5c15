package consts

const (
	TokenRevokedKey   = "auth:revoked:"
	DashboardCacheKey = "dashboard:user:"
	OAuthStateKey     = "oauth:state:"
)

const (
	StatsRollForwardLock = "lock:stats:roll-forward"
)
