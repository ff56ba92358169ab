package services_test

import (
	"fmt"
	"testing"

	"estore/internal/models"
	"estore/internal/repositories"
	"estore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockEmployeeRepository is a mock implementation of repositories.EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(employee *models.Employee) error {
	args := m.Called(employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func TestAuthService_RegisterEmployee(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// Successful registration stores a bcrypt hash, not the password.
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Employee")).Run(func(args mock.Arguments) {
		employee := args.Get(0).(*models.Employee)
		assert.Equal(t, models.RoleEmployee, employee.Role)
		assert.NotEqual(t, "password123", employee.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte("password123")))
	}).Return(nil).Once()

	employee, err := authService.RegisterEmployee("new@example.com", "password123")
	assert.NoError(t, err)
	assert.NotNil(t, employee)
	mockRepo.AssertExpectations(t)

	// Duplicate email is rejected.
	mockRepo.On("GetByEmail", "taken@example.com").Return(&models.Employee{ID: "1"}, nil).Once()
	_, err = authService.RegisterEmployee("taken@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)

	// A store failure during the lookup is not treated as "email free".
	mockRepo.On("GetByEmail", "flaky@example.com").Return(nil, fmt.Errorf("connection refused")).Once()
	_, err = authService.RegisterEmployee("flaky@example.com", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	employee := &models.Employee{
		ID:           "emp-123",
		Email:        "worker@example.com",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleEmployee,
	}

	// Successful employee login.
	mockRepo.On("GetByEmail", employee.Email).Return(employee, nil).Once()
	status, token, err := authService.Login(employee.Email, "password123")
	assert.NoError(t, err)
	assert.Equal(t, services.StatusSuccess, status)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, employee.ID, claims["employee_id"])
	assert.Equal(t, employee.Email, claims["email"])
	assert.Equal(t, models.RoleEmployee, claims["role"])
	mockRepo.AssertExpectations(t)

	// The admin account reports the Admin status.
	admin := &models.Employee{
		ID:           "adm-1",
		Email:        "admin@example.com",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
	}
	mockRepo.On("GetByEmail", admin.Email).Return(admin, nil).Once()
	status, token, err = authService.Login(admin.Email, "password123")
	assert.NoError(t, err)
	assert.Equal(t, services.StatusAdmin, status)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)

	// Wrong password.
	mockRepo.On("GetByEmail", employee.Email).Return(employee, nil).Once()
	_, _, err = authService.Login(employee.Email, "wrongpassword")
	assert.ErrorIs(t, err, services.ErrWrongPassword)
	mockRepo.AssertExpectations(t)

	// Unknown email.
	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, _, err = authService.Login("ghost@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrUnknownEmail)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// Garbage token.
	_, err := authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Token signed with a different secret.
	otherService := services.NewAuthService(mockRepo, "other_secret")
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	mockRepo.On("GetByEmail", "x@example.com").Return(&models.Employee{
		ID: "1", Email: "x@example.com", PasswordHash: string(hashedPassword), Role: models.RoleEmployee,
	}, nil).Once()
	_, foreignToken, err := otherService.Login("x@example.com", "pw")
	assert.NoError(t, err)
	_, err = authService.ValidateToken(foreignToken)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SeedAdmin(t *testing.T) {
	mockRepo := new(MockEmployeeRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// First boot creates the admin row with a hashed password.
	mockRepo.On("GetByEmail", "admin@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Employee")).Run(func(args mock.Arguments) {
		admin := args.Get(0).(*models.Employee)
		assert.Equal(t, models.RoleAdmin, admin.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("adminpassword")))
	}).Return(nil).Once()

	err := authService.SeedAdmin("admin@example.com", "adminpassword")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Subsequent boots leave the existing account alone.
	rebootRepo := new(MockEmployeeRepository)
	rebootService := services.NewAuthService(rebootRepo, "test_jwt_secret")
	rebootRepo.On("GetByEmail", "admin@example.com").Return(&models.Employee{ID: "adm-1"}, nil).Once()
	err = rebootService.SeedAdmin("admin@example.com", "adminpassword")
	assert.NoError(t, err)
	rebootRepo.AssertNotCalled(t, "Create", mock.Anything)
	rebootRepo.AssertExpectations(t)

	// No configured credentials, no seeding.
	err = authService.SeedAdmin("", "")
	assert.NoError(t, err)
}
