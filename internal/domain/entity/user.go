package entity

// Roles conocidos para User.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// User usuario del sistema.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt; nunca se expone en respuestas
	Role         string
}
