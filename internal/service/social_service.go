package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/oauth"
	"SocialDash/internal/pkg/redis"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const oauthStateTTL = 10 * time.Minute

type SocialService interface {
	ListAccounts(ctx context.Context, principal security.Principal) ([]*dto.SocialAccountDTO, error)
	Connect(ctx context.Context, principal security.Principal, dto *dto.ConnectDTO) (*dto.SocialAccountDTO, error)
	Disconnect(ctx context.Context, principal security.Principal, dto *dto.DisconnectDTO) error
	AuthorizeURL(ctx context.Context, principal security.Principal, platform string) (*dto.OAuthURLDTO, error)
	Callback(ctx context.Context, principal security.Principal, platform string, dto *dto.OAuthCallbackDTO) (*dto.SocialAccountDTO, error)
	ExpireConnections(ctx context.Context, now time.Time) (int64, error)
}

type socialServiceImpl struct {
	userRepo       repository.UserRepo
	connectionRepo repository.SocialConnectionRepo
	oauth          *oauth.Registry
}

func NewSocialService(
	userRepo repository.UserRepo,
	connectionRepo repository.SocialConnectionRepo,
	registry *oauth.Registry,
) SocialService {
	return &socialServiceImpl{
		userRepo:       userRepo,
		connectionRepo: connectionRepo,
		oauth:          registry,
	}
}

func (s *socialServiceImpl) ListAccounts(ctx context.Context, principal security.Principal) ([]*dto.SocialAccountDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	conns, err := s.connectionRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.SocialAccountDTO, 0, len(conns))
	for _, c := range conns {
		account, err := toSocialAccountDTO(c)
		if err != nil {
			return nil, err
		}
		res = append(res, account)
	}
	return res, nil
}

// Connect 按 (用户, 平台) 写入或更新连接
func (s *socialServiceImpl) Connect(ctx context.Context, principal security.Principal, connectDTO *dto.ConnectDTO) (*dto.SocialAccountDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	if strings.TrimSpace(connectDTO.Platform) == "" ||
		strings.TrimSpace(connectDTO.AccessToken) == "" ||
		strings.TrimSpace(connectDTO.PlatformUserID) == "" ||
		strings.TrimSpace(connectDTO.Username) == "" {
		return nil, ErrConnectFieldsRequired
	}
	if !util.IsSupportedPlatform(connectDTO.Platform) {
		return nil, ErrPlatformUnsupported
	}

	conn := &model.SocialConnection{
		UserID:         principal.UserID,
		Platform:       util.NormalizePlatform(connectDTO.Platform),
		PlatformUserID: strings.TrimSpace(connectDTO.PlatformUserID),
		Username:       strings.TrimSpace(connectDTO.Username),
		AccessToken:    connectDTO.AccessToken,
		TokenExpiresAt: connectDTO.ExpiresAt,
		Metadata:       connectDTO.Metadata,
		IsConnected:    true,
	}
	if connectDTO.RefreshToken != nil {
		conn.RefreshToken = *connectDTO.RefreshToken
	}
	return s.saveConnection(ctx, conn)
}

func (s *socialServiceImpl) Disconnect(ctx context.Context, principal security.Principal, disconnectDTO *dto.DisconnectDTO) error {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return err
	}
	platformUserID := strings.TrimSpace(disconnectDTO.PlatformUserID)
	if platformUserID == "" {
		return ErrConnectFieldsRequired
	}

	affected, err := s.connectionRepo.DeleteByPlatformUserID(ctx, principal.UserID, platformUserID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrConnectionNotFound
	}
	invalidateDashboard(ctx, principal.UserID)
	return nil
}

// AuthorizeURL 生成授权地址，state 在 Redis 中保存 10 分钟
func (s *socialServiceImpl) AuthorizeURL(ctx context.Context, principal security.Principal, platform string) (*dto.OAuthURLDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	platform = util.NormalizePlatform(platform)
	if !util.IsSupportedPlatform(platform) {
		return nil, ErrPlatformUnsupported
	}

	state := uuid.NewString()
	url, ok := s.oauth.AuthCodeURL(platform, state)
	if !ok {
		return nil, ErrOAuthNotConfigured
	}

	if err := redis.SetWithExpiration(ctx, consts.OAuthStateKey+state, oauthStateValue(principal.UserID, platform), oauthStateTTL); err != nil {
		return nil, err
	}
	return &dto.OAuthURLDTO{URL: url, State: state}, nil
}

// Callback 校验 state 后写入占位 token，不与平台交换真实 token
func (s *socialServiceImpl) Callback(ctx context.Context, principal security.Principal, platform string, callbackDTO *dto.OAuthCallbackDTO) (*dto.SocialAccountDTO, error) {
	if _, err := requireUser(ctx, s.userRepo, principal); err != nil {
		return nil, err
	}
	platform = util.NormalizePlatform(platform)
	if !util.IsSupportedPlatform(platform) {
		return nil, ErrPlatformUnsupported
	}

	stored, err := redis.GetDel(ctx, consts.OAuthStateKey+callbackDTO.State)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != oauthStateValue(principal.UserID, platform) {
		return nil, ErrOAuthStateInvalid
	}

	metadata, err := json.Marshal(map[string]string{"source": "oauth"})
	if err != nil {
		return nil, err
	}

	conn := &model.SocialConnection{
		UserID:         principal.UserID,
		Platform:       platform,
		PlatformUserID: fmt.Sprintf("%s_%d", platform, principal.UserID),
		Username:       fmt.Sprintf("%s_user_%d", platform, principal.UserID),
		AccessToken:    "placeholder_" + uuid.NewString(),
		RefreshToken:   "placeholder_" + uuid.NewString(),
		Metadata:       datatypes.JSON(metadata),
		IsConnected:    true,
	}
	log.InfoContext(ctx, "oauth callback accepted with placeholder tokens", "user_id", principal.UserID, "platform", platform)
	return s.saveConnection(ctx, conn)
}

// ExpireConnections 将 token 过期的连接标记为断开，返回受影响的用户数
func (s *socialServiceImpl) ExpireConnections(ctx context.Context, now time.Time) (int64, error) {
	userIDs, err := s.connectionRepo.DisconnectExpired(ctx, now)
	if err != nil {
		return 0, err
	}
	invalidateDashboard(ctx, userIDs...)
	return int64(len(userIDs)), nil
}

func (s *socialServiceImpl) saveConnection(ctx context.Context, conn *model.SocialConnection) (*dto.SocialAccountDTO, error) {
	if err := s.connectionRepo.Upsert(ctx, conn); err != nil {
		return nil, err
	}
	invalidateDashboard(ctx, conn.UserID)
	return toSocialAccountDTO(conn)
}

func oauthStateValue(userID uint64, platform string) string {
	return strconv.FormatUint(userID, 10) + ":" + platform
}
