package dto

import "yoga_storefront/internal/feature/auth/domain/entity"

// RegisterReq represents the request body for the /register endpoint.
// It uses Gin's binding tags for validation (required fields, email format, password length).
type RegisterReq struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=7,max=20"`
	Password  string `json:"password" binding:"required,min=8"`
}

// ToRegistration converts the request to the domain registration data.
func (r RegisterReq) ToRegistration() entity.Registration {
	return entity.Registration{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
	}
}
