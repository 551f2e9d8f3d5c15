package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/model"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/redis"
	"SocialDash/internal/pkg/security"
	"SocialDash/internal/pkg/util"
	"SocialDash/internal/repository"
	"bytes"
	"context"
	"errors"
	"io"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const avatarSize = 256

// ObjectStorage 头像等文件的存储
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	DeleteFile(ctx context.Context, objectName string) error
	GetPublicURL(objectName string) string
}

type UserService interface {
	Signup(ctx context.Context, dto *dto.SignupDTO) (*dto.UserDTO, error)
	Signin(ctx context.Context, dto *dto.SigninDTO) (*dto.SigninResultDTO, error)
	Signout(ctx context.Context, token string) error
	GetSession(ctx context.Context, principal security.Principal) (*dto.SessionDTO, error)
	ChangePassword(ctx context.Context, principal security.Principal, dto *dto.ChangePasswordDTO) error
	UploadAvatar(ctx context.Context, principal security.Principal, reader io.ReadSeeker) (*dto.AvatarDTO, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	storage  ObjectStorage
}

// NewUserService storage 为 nil 时头像上传不可用
func NewUserService(userRepo repository.UserRepo, storage ObjectStorage) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		storage:  storage,
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, signupDTO *dto.SignupDTO) (*dto.UserDTO, error) {
	email := normalizeEmail(signupDTO.Email)
	exist, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrUserExist
	}

	passwordHash, err := security.HashPassword(signupDTO.Password)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(signupDTO.Name)
	user := &model.User{
		Name:     &name,
		Email:    email,
		Password: &passwordHash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return toUserDTO(user)
}

func (s *UserServiceImpl) Signin(ctx context.Context, signinDTO *dto.SigninDTO) (*dto.SigninResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, normalizeEmail(signinDTO.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password == nil {
		return nil, ErrInvalidCredentials
	}
	if err = security.CheckPasswordHash(signinDTO.Password, *user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, expiresAt, err := security.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	userDTO, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.SigninResultDTO{
		User:      *userDTO,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Signout 将 Token 签名加入黑名单直至其自然过期，无效 Token 直接忽略
func (s *UserServiceImpl) Signout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		return nil
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokedKey+signature, "1", ttl)
}

func (s *UserServiceImpl) GetSession(ctx context.Context, principal security.Principal) (*dto.SessionDTO, error) {
	user, err := s.userRepo.GetUserWithConnections(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	accounts := make([]*dto.SocialAccountDTO, 0, len(user.SocialConnections))
	for i := range user.SocialConnections {
		account, err := toSocialAccountDTO(&user.SocialConnections[i])
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return &dto.SessionDTO{
		User:              *userDTO,
		SocialConnections: accounts,
	}, nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, principal security.Principal, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.requireUser(ctx, principal)
	if err != nil {
		return err
	}
	if user.Password == nil {
		return ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(changeDTO.CurrentPassword, *user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return ErrPasswordIncorrect
		}
		return err
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, user.ID, passwordHash)
}

func (s *UserServiceImpl) UploadAvatar(ctx context.Context, principal security.Principal, reader io.ReadSeeker) (*dto.AvatarDTO, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}
	user, err := s.requireUser(ctx, principal)
	if err != nil {
		return nil, err
	}

	contentType, err := util.DetectContentType(reader)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	avatar, err := util.ResizeAvatar(reader, avatarSize)
	if err != nil {
		log.WarnContext(ctx, "avatar decode failed", "user_id", user.ID, "err", err)
		return nil, ErrFileNotSupported
	}

	objectName := "avatars/" + time.Now().Format("2006/01/02/") + uuid.NewString() + ".jpg"
	key, err := s.storage.UploadFile(ctx, objectName, bytes.NewReader(avatar), int64(len(avatar)), "image/jpeg")
	if err != nil {
		return nil, err
	}

	url := s.storage.GetPublicURL(key)
	if err = s.userRepo.UpdateImage(ctx, user.ID, url); err != nil {
		_ = s.storage.DeleteFile(ctx, key)
		return nil, err
	}

	return &dto.AvatarDTO{Image: url}, nil
}

func (s *UserServiceImpl) requireUser(ctx context.Context, principal security.Principal) (*model.User, error) {
	return requireUser(ctx, s.userRepo, principal)
}

// requireUser 会话存在但用户已被删除时返回 ErrUserNotFound
func requireUser(ctx context.Context, userRepo repository.UserRepo, principal security.Principal) (*model.User, error) {
	if principal.UserID == 0 {
		return nil, ErrUnauthorized
	}
	user, err := userRepo.GetUserById(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

func toSocialAccountDTO(conn *model.SocialConnection) (*dto.SocialAccountDTO, error) {
	account := &dto.SocialAccountDTO{}
	if err := copier.Copy(account, conn); err != nil {
		return nil, err
	}
	return account, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
