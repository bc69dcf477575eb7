package domain

// UserRole distinguishes administrators from regular users.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// User represents an account able to authenticate against the service.
type User struct {
	UserID       string   `json:"userID"` // Primary key (UUID)
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"` // Stored lowercase, unique
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor is the authenticated identity performing a call, as supplied by the
// auth middleware. Mutating engine operations authorize against its Role.
type Actor struct {
	UserID string
	Role   UserRole
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
