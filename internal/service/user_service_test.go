package service

import (
	"SocialDash/internal/api/dto"
	"SocialDash/internal/pkg/consts"
	"SocialDash/internal/pkg/security"
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"
)

type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) UploadFile(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	f.objects[objectName] = b
	return objectName, nil
}

func (f *fakeStorage) DeleteFile(_ context.Context, objectName string) error {
	delete(f.objects, objectName)
	return nil
}

func (f *fakeStorage) GetPublicURL(objectName string) string {
	return "https://cdn.example.com/avatars-bucket/" + objectName
}

func TestSignupAndSignin(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo, nil)
	ctx := context.Background()

	user, err := svc.Signup(ctx, &dto.SignupDTO{Name: "Test", Email: "Test@Example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if user.Email != "test@example.com" || user.Name == nil || *user.Name != "Test" {
		t.Errorf("user = %+v", user)
	}

	_, err = svc.Signup(ctx, &dto.SignupDTO{Name: "Again", Email: "test@example.com", Password: "password123"})
	if !errors.Is(err, ErrUserExist) {
		t.Errorf("duplicate Signup() err = %v, want ErrUserExist", err)
	}

	if _, err = svc.Signin(ctx, &dto.SigninDTO{Email: "test@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err = svc.Signin(ctx, &dto.SigninDTO{Email: "nobody@example.com", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v", err)
	}

	res, err := svc.Signin(ctx, &dto.SigninDTO{Email: "test@example.com", Password: "password123"})
	if err != nil {
		t.Fatal(err)
	}
	claims, err := security.ValidateToken(res.Token)
	if err != nil {
		t.Fatalf("issued token invalid: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "test@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestSignoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo, nil)
	ctx := context.Background()

	token, _, err := security.GenerateToken(7, "a@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if err = svc.Signout(ctx, token); err != nil {
		t.Fatal(err)
	}

	signature, _ := security.ExtractSignature(token)
	key := consts.TokenRevokedKey + signature
	if !env.mr.Exists(key) {
		t.Fatal("token signature not blacklisted")
	}
	if ttl := env.mr.TTL(key); ttl <= 0 || ttl > security.TokenTTL() {
		t.Errorf("ttl = %v", ttl)
	}

	// 无效 token 不报错
	if err = svc.Signout(ctx, "garbage"); err != nil {
		t.Errorf("Signout(garbage) = %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo, nil)
	ctx := context.Background()

	user, err := svc.Signup(ctx, &dto.SignupDTO{Name: "Test", Email: "a@example.com", Password: "password123"})
	if err != nil {
		t.Fatal(err)
	}
	p := security.Principal{UserID: user.ID, Email: user.Email}

	err = svc.ChangePassword(ctx, p, &dto.ChangePasswordDTO{CurrentPassword: "nope-nope", NewPassword: "newpassword1"})
	if !errors.Is(err, ErrPasswordIncorrect) {
		t.Errorf("err = %v, want ErrPasswordIncorrect", err)
	}
	if err = svc.ChangePassword(ctx, p, &dto.ChangePasswordDTO{CurrentPassword: "password123", NewPassword: "newpassword1"}); err != nil {
		t.Fatal(err)
	}
	if _, err = svc.Signin(ctx, &dto.SigninDTO{Email: "a@example.com", Password: "newpassword1"}); err != nil {
		t.Errorf("signin with new password: %v", err)
	}
}

func TestGetSessionHidesTokens(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.userRepo, nil)
	p := env.createUser(t, "a@example.com")
	env.connect(t, p, "twitter")

	session, err := svc.GetSession(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if session.User.Email != "a@example.com" || len(session.SocialConnections) != 1 {
		t.Errorf("session = %+v", session)
	}
}

func TestUploadAvatar(t *testing.T) {
	env := newTestEnv(t)
	storage := &fakeStorage{objects: map[string][]byte{}}
	svc := NewUserService(env.userRepo, storage)
	p := env.createUser(t, "a@example.com")
	ctx := context.Background()

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 400, 300))); err != nil {
		t.Fatal(err)
	}

	res, err := svc.UploadAvatar(ctx, p, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("UploadAvatar() error = %v", err)
	}
	if !strings.HasPrefix(res.Image, "https://cdn.example.com/avatars-bucket/avatars/") || !strings.HasSuffix(res.Image, ".jpg") {
		t.Errorf("image = %s", res.Image)
	}
	if len(storage.objects) != 1 {
		t.Errorf("stored %d objects", len(storage.objects))
	}

	user, _ := env.userRepo.GetUserById(ctx, p.UserID)
	if user.Image == nil || *user.Image != res.Image {
		t.Errorf("user image = %v", user.Image)
	}

	if _, err = svc.UploadAvatar(ctx, p, strings.NewReader("plain text")); !errors.Is(err, ErrFileNotSupported) {
		t.Errorf("text upload err = %v", err)
	}
	if _, err = NewUserService(env.userRepo, nil).UploadAvatar(ctx, p, bytes.NewReader(buf.Bytes())); !errors.Is(err, ErrStorageDisabled) {
		t.Errorf("disabled storage err = %v", err)
	}
}
