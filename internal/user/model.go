package user

import (
	"time"
)

type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	PhoneNumber  string
	Address      string
	FirstName    string
	LastName     string
	MiddleNames  *string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Response is the public view of a user. It never carries the password hash.
type Response struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	MiddleNames *string   `json:"middle_names,omitempty"`
	Role        string    `json:"role"`
	CompanyID   *int64    `json:"company_id,omitempty"`
	CompanyRole string    `json:"company_role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewResponse(u User) *Response {
	return &Response{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		MiddleNames: u.MiddleNames,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func NewResponses(users []User) []Response {
	res := make([]Response, 0, len(users))
	for _, u := range users {
		res = append(res, *NewResponse(u))
	}
	return res
}
