package service

import (
	"strings"
	"time"

	"github.com/foodgo-next/internal/constants"
	"github.com/foodgo-next/internal/models"
	"github.com/foodgo-next/internal/repository"
)

// CreateUserInput 创建用户输入
type CreateUserInput struct {
	UID   string
	Email string
	Name  string
	Phone string
	Role  string
}

// UpdateUserInput 更新用户输入（仅更新非 nil 字段）
type UpdateUserInput struct {
	Email *string
	Name  *string
	Phone *string
	Role  *string
}

// UserService 用户服务
// UID 由外部身份系统分配，这里只做登记与资料维护。
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create 登记用户
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	uid := strings.TrimSpace(input.UID)
	if uid == "" {
		return nil, ErrUserNotFound
	}
	existing, err := s.userRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = constants.UserRoleCustomer
	}
	if !constants.ValidUserRoles[role] {
		return nil, ErrInvalidUserRole
	}

	now := time.Now()
	user := &models.User{
		UID:       uid,
		Email:     strings.TrimSpace(input.Email),
		Name:      input.Name,
		Phone:     input.Phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get 根据UID获取用户
func (s *UserService) Get(uid string) (*models.User, error) {
	user, err := s.userRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail 根据邮箱获取用户
func (s *UserService) GetByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List 分页查询用户
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	if filter.Role != "" && !constants.ValidUserRoles[filter.Role] {
		return nil, 0, ErrInvalidUserRole
	}
	return s.userRepo.List(filter)
}

// Update 部分更新用户资料
func (s *UserService) Update(uid string, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if input.Email != nil {
		updates["email"] = strings.TrimSpace(*input.Email)
	}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Role != nil {
		if !constants.ValidUserRoles[*input.Role] {
			return nil, ErrInvalidUserRole
		}
		updates["role"] = *input.Role
	}
	if len(updates) == 0 {
		return user, nil
	}
	updates["updated_at"] = time.Now()

	if err := s.userRepo.Updates(uid, updates); err != nil {
		return nil, err
	}
	return s.userRepo.GetByUID(uid)
}

// Delete 删除用户
func (s *UserService) Delete(uid string) error {
	user, err := s.userRepo.GetByUID(uid)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(uid)
}
