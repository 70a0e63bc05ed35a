package service

import (
	"context"
	"errors"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

// ErrEmailTaken 邮箱地址已被注册
var ErrEmailTaken = errors.New("email already exists")

// UserService 封装用户注册逻辑。
type UserService struct {
	repo storage.UserRepository
}

// NewUserService 创建用户业务服务。
func NewUserService(repo storage.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput 定义用户注册的输入。
type CreateUserInput struct {
	Name  string
	Email string
}

// Create 注册一名新用户。
// 邮箱地址做格式校验与精确匹配的唯一性检查（先查后插，不依赖唯一索引）。
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := domain.ValidateEmailAddress(input.Email); err != nil {
		return nil, err
	}

	_, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return nil, err
	}

	user := &domain.User{
		Name:  input.Name,
		Email: input.Email,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List 返回全部用户。
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}
