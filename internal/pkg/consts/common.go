package consts

const (
	MimePrefixImage = "image"
)

// 支持的社交平台
const (
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformLinkedIn  = "linkedin"
)

// SupportedPlatforms 看板增长曲线固定展示的平台顺序
var SupportedPlatforms = []string{
	PlatformInstagram,
	PlatformTwitter,
	PlatformFacebook,
	PlatformLinkedIn,
}

const (
	// TokenCookieName holds the session JWT.
	TokenCookieName = "token"
	// PrincipalKey is the gin context key for the authenticated principal.
	PrincipalKey = "principal"
)

// LegacySessionCookies are cleared on sign-out alongside TokenCookieName.
var LegacySessionCookies = []string{
	"next-auth.session-token",
	"next-auth.callback-url",
	"next-auth.csrf-token",
}

const (
	DefaultGrowthMonths = 6
	MaxGrowthMonths     = 24
	DefaultOverviewSize = 12
	MaxOverviewSize     = 100
)
