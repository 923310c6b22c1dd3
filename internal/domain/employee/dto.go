package employee

import (
	"github.com/autopay-hq/autopay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name   string          `json:"name"`
	Salary decimal.Decimal `json:"salary"`
	Role   string          `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a positive number"})
	}
	if !Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be Admin, Clerk or Employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateFirstAdminRequest struct {
	Name   string          `json:"name"`
	Salary decimal.Decimal `json:"salary"`
}

func (r *CreateFirstAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a positive number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	ID     string          `json:"-"`
	Salary decimal.Decimal `json:"salary"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must look like EMP-00001"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a positive number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Salary           decimal.Decimal `json:"salary"`
	Role             string          `json:"role"`
	RegistrationDate string          `json:"registrationDate"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Salary:           e.Salary,
		Role:             string(e.Role),
		RegistrationDate: e.RegistrationDate.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToResponseList(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, ToResponse(e))
	}
	return out
}
