package employee

import "time"

// Member is a user's membership in a company together with the role they hold.
type Member struct {
	UserID    int64     `json:"user_id"`
	CompanyID int64     `json:"company_id"`
	RoleID    int64     `json:"role_id"`
	RoleName  string    `json:"role_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	JoinedAt  time.Time `json:"joined_at"`
}
