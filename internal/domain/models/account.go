package models

import "smarttoll/internal/domain"

// Account is a registered login. Passwords are stored bcrypt-hashed.
type Account struct {
	ID            domain.ID   `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	VehicleNumber string      `json:"vehicleNumber,omitempty"`
	PasswordHash  string      `json:"-"`
	Role          domain.Role `json:"role"`
	Status        string      `json:"status"`
}
