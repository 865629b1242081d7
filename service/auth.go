package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"SnackShop/config"
	"SnackShop/models"
	"SnackShop/pkg/jwt"
	"SnackShop/pkg/response"
	"SnackShop/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore dao.Users 实现
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Users, error)
	FindByID(ctx context.Context, id any) (*models.Users, error)
	Create(ctx context.Context, user *models.Users) error
	UpdatePassword(ctx context.Context, userID int, hash string) error
	UpdateProfile(ctx context.Context, userID int, values map[string]any) error
}

type AuthService struct {
	Config *config.Config
	Store  UserStore
}

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	Me(ctx context.Context, userID int) (*types.UserInfo, error)
	UpdateProfile(ctx context.Context, userID int, req *types.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, userID int, req *types.ChangePasswordRequest) error
}

func (s *AuthService) issueToken(user *models.Users) (string, error) {
	expire := time.Duration(s.Config.Jwt.Expire()) * time.Hour
	return jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID, user.Email, user.FullName, user.Role,
		expire,
	)
}

func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" || strings.TrimSpace(req.FullName) == "" {
		return nil, response.BadRequest("email, password and full_name are required")
	}
	if len(req.Password) < 6 {
		return nil, response.BadRequest("password must be at least 6 characters")
	}

	existing, err := s.Store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.Conflict("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.Users{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         models.RoleCustomer,
	}
	if err := s.Store.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{Token: token, User: userInfo(user)}, nil
}

func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, response.BadRequest("email and password are required")
	}

	user, err := s.Store.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	// 账号不存在和密码错误返回同一个提示
	if user == nil {
		return nil, response.Unauthorized("incorrect email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, response.Unauthorized("incorrect email or password")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &types.AuthResponse{Token: token, User: userInfo(user)}, nil
}

func (s *AuthService) Me(ctx context.Context, userID int) (*types.UserInfo, error) {
	user, err := s.Store.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	info := userInfo(user)
	return &info, nil
}

// UpdateProfile nil 字段保持不变，不拿空串当"未传"用
func (s *AuthService) UpdateProfile(ctx context.Context, userID int, req *types.UpdateProfileRequest) error {
	values := map[string]any{}
	if req.FullName != nil {
		values["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		values["phone"] = *req.Phone
	}
	if req.Address != nil {
		values["address"] = *req.Address
	}
	return s.Store.UpdateProfile(ctx, userID, values)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID int, req *types.ChangePasswordRequest) error {
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return response.BadRequest("current and new password are required")
	}
	if len(req.NewPassword) < 6 {
		return response.BadRequest("new password must be at least 6 characters")
	}

	user, err := s.Store.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NotFound("user not found")
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return response.Unauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Store.UpdatePassword(ctx, userID, string(hash))
}

func userInfo(u *models.Users) types.UserInfo {
	return types.UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
