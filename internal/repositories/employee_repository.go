package repositories

import "estore/internal/models"

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	Create(employee *models.Employee) error
	GetByEmail(email string) (*models.Employee, error)
	GetByID(id string) (*models.Employee, error)
}
