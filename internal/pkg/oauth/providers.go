package oauth

import (
	"SocialDash/internal/api/config"
	"SocialDash/internal/pkg/consts"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// twitterEndpoint x/oauth2 未内置 Twitter OAuth 2.0 端点
var twitterEndpoint = oauth2.Endpoint{
	AuthURL:  "https://twitter.com/i/oauth2/authorize",
	TokenURL: "https://api.twitter.com/2/oauth2/token",
}

var defaultEndpoints = map[string]oauth2.Endpoint{
	consts.PlatformFacebook:  endpoints.Facebook,
	consts.PlatformInstagram: endpoints.Instagram,
	consts.PlatformLinkedIn:  endpoints.LinkedIn,
	consts.PlatformTwitter:   twitterEndpoint,
}

var defaultScopes = map[string][]string{
	consts.PlatformFacebook:  {"public_profile", "pages_show_list", "pages_read_engagement"},
	consts.PlatformInstagram: {"user_profile", "user_media"},
	consts.PlatformLinkedIn:  {"openid", "profile", "email"},
	consts.PlatformTwitter:   {"tweet.read", "users.read", "offline.access"},
}

// Registry 按平台构建 oauth2.Config
type Registry struct {
	redirectBase string
	providers    map[string]config.OAuthAppConfig
}

func NewRegistry(cfg config.OAuthConfig) *Registry {
	providers := make(map[string]config.OAuthAppConfig, len(cfg.Providers))
	for name, p := range cfg.Providers {
		providers[strings.ToLower(name)] = p
	}
	return &Registry{
		redirectBase: strings.TrimRight(cfg.RedirectBase, "/"),
		providers:    providers,
	}
}

// Config 未配置 client_id 的平台返回 false
func (r *Registry) Config(platform string) (*oauth2.Config, bool) {
	app, ok := r.providers[platform]
	if !ok || app.ClientID == "" {
		return nil, false
	}
	endpoint, ok := defaultEndpoints[platform]
	if !ok {
		return nil, false
	}
	if app.AuthURL != "" {
		endpoint.AuthURL = app.AuthURL
	}
	if app.TokenURL != "" {
		endpoint.TokenURL = app.TokenURL
	}
	scopes := app.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes[platform]
	}

	return &oauth2.Config{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		RedirectURL:  r.redirectBase + "/api/social/oauth/" + platform + "/callback",
		Scopes:       scopes,
		Endpoint:     endpoint,
	}, true
}

// AuthCodeURL 生成授权跳转地址
func (r *Registry) AuthCodeURL(platform, state string) (string, bool) {
	cfg, ok := r.Config(platform)
	if !ok {
		return "", false
	}
	var opts []oauth2.AuthCodeOption
	if platform == consts.PlatformTwitter {
		// Twitter 强制 PKCE
		opts = append(opts, oauth2.S256ChallengeOption(oauth2.GenerateVerifier()))
	}
	return cfg.AuthCodeURL(state, opts...), true
}
