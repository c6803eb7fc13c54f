package domain

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRolePlayer UserRole = "player"
)

type User struct {
	ID           int32    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
}
