package dto

import "time"

// EmployeeCreateRequest hires an employee.
type EmployeeCreateRequest struct {
	Name   string `json:"name" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Phone  string `json:"phone" validate:"required"`
	Salary int    `json:"salary" validate:"gte=0"`
}

// EmployeeResponse is an employee.
type EmployeeResponse struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	Phone   string    `json:"phone"`
	Salary  int       `json:"salary"`
	Active  bool      `json:"active"`
	HiredAt time.Time `json:"hiredAt"`
}
