package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"integraservicios/internal/db"
	"integraservicios/internal/model"
)

// EmployeeRepository defines persistence operations for staff members.
type EmployeeRepository interface {
	Exists(ctx context.Context, id uint) (bool, error)
	Upsert(ctx context.Context, employee *model.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository builds a GORM-backed repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Employee{}).Where("id_empleado = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrap(db.TranslateError(err), "employee exists")
	}
	return n > 0, nil
}

// Upsert inserts the employee or renames the existing row with the same id.
func (r *employeeRepository) Upsert(ctx context.Context, employee *model.Employee) error {
	if employee.ID == 0 {
		err := r.db.WithContext(ctx).Create(employee).Error
		return errors.Wrap(db.TranslateError(err), "create employee")
	}
	err := r.db.WithContext(ctx).Where(model.Employee{ID: employee.ID}).
		Assign(model.Employee{Name: employee.Name}).
		FirstOrCreate(employee).Error
	return errors.Wrap(db.TranslateError(err), "upsert employee")
}
