package auth

import (
	"context"
	"testing"

	"safelogist/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock user repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "new@translog.ru").Return(false, nil)
	userRepo.On("ExistsByPhone", mock.Anything, "+79001234567").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwtSvc.On("GenerateToken", mock.Anything, "carrier").Return("fake-jwt-token", nil)

	service := NewService(userRepo, jwtSvc)

	user, token, err := service.Register(context.Background(), RegisterRequest{
		Email:       "NEW@translog.ru",
		Password:    "securepass123",
		Phone:       "+79001234567",
		Role:        "carrier",
		CompanyName: "ТрансЛогистик",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@translog.ru", user.Email)
	assert.Equal(t, domain.RoleCarrier, user.Role)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "fake-jwt-token", token)
	userRepo.AssertExpectations(t)
}

func TestService_Register_AdminRoleRejected(t *testing.T) {
	service := NewService(new(mockUserRepo), new(mockJWTService))

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "sneaky@example.com",
		Password: "securepass123",
		Phone:    "+79000000000",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestService_Register_EmailExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("ExistsByEmail", mock.Anything, "exists@translog.ru").Return(true, nil)

	service := NewService(userRepo, new(mockJWTService))

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "exists@translog.ru",
		Password: "securepass123",
		Phone:    "+79001234567",
		Role:     "shipper",
	})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Register_PhoneExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	userRepo.On("ExistsByPhone", mock.Anything, "+79001234567").Return(true, nil)

	service := NewService(userRepo, new(mockJWTService))

	_, _, err := service.Register(context.Background(), RegisterRequest{
		Email:    "new@translog.ru",
		Password: "securepass123",
		Phone:    "+79001234567",
		Role:     "forwarder",
	})

	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "user@translog.ru").Return(&domain.User{
		ID:           10,
		Email:        "user@translog.ru",
		PasswordHash: string(hashed),
		Role:         domain.RoleShipper,
		IsActive:     true,
	}, nil)
	jwtSvc.On("GenerateToken", int64(10), "shipper").Return("login-token", nil)

	service := NewService(userRepo, jwtSvc)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@translog.ru",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", token)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "user@translog.ru").Return(&domain.User{
		ID:           10,
		PasswordHash: string(hashed),
		IsActive:     true,
	}, nil)

	service := NewService(userRepo, new(mockJWTService))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@translog.ru",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "ghost@translog.ru").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(userRepo, new(mockJWTService))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@translog.ru",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_BlockedAccount(t *testing.T) {
	userRepo := new(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "blocked@translog.ru").Return(&domain.User{
		ID:           11,
		PasswordHash: string(hashed),
		IsActive:     false,
	}, nil)

	service := NewService(userRepo, new(mockJWTService))

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "blocked@translog.ru",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrAccountBlocked)
}
