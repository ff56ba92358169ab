package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"estore/internal/models"
	"estore/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Login statuses reported to the client.
const (
	StatusAdmin   = "Admin"
	StatusSuccess = "Success"
)

var (
	// ErrEmailTaken is returned when registering an already-registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnknownEmail is returned when no account matches the login email.
	ErrUnknownEmail = errors.New("user does not exist")
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("password is incorrect")
)

// AuthService handles registration and credential verification for
// employees. Passwords are stored as bcrypt hashes and compared with
// bcrypt's constant-time check.
type AuthService struct {
	employeeRepo repositories.EmployeeRepository
	jwtSecret    []byte
	tokenDurat   time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(employeeRepo repositories.EmployeeRepository, jwtSecret string) *AuthService {
	return &AuthService{
		employeeRepo: employeeRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenDurat:   24 * time.Hour,
	}
}

// RegisterEmployee registers a new employee account with a hashed password.
func (s *AuthService) RegisterEmployee(email, password string) (*models.Employee, error) {
	_, err := s.employeeRepo.GetByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleEmployee,
	}
	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to register employee: %w", err)
	}
	return employee, nil
}

// Login verifies the credentials and, on success, returns the account
// status ("Admin" for the admin account, "Success" otherwise) and a signed
// JWT token.
func (s *AuthService) Login(email, password string) (string, string, error) {
	employee, err := s.employeeRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", "", ErrUnknownEmail
		}
		return "", "", fmt.Errorf("failed to look up employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrWrongPassword
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"employee_id": employee.ID,
		"email":       employee.Email,
		"role":        employee.Role,
		"exp":         time.Now().Add(s.tokenDurat).Unix(),
		"iat":         time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate token: %w", err)
	}

	status := StatusSuccess
	if employee.Role == models.RoleAdmin {
		status = StatusAdmin
	}
	return status, tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// SeedAdmin ensures the configured admin account exists, hashing its
// password at seed time. Existing accounts are left untouched.
func (s *AuthService) SeedAdmin(email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := s.employeeRepo.GetByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &models.Employee{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
	}
	if err := s.employeeRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	log.Printf("Seeded admin account %s", email)
	return nil
}
