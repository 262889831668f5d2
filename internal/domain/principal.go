package domain

// Role роль аутентифицированного субъекта
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Principal аутентифицированный субъект, переданный auth-слоем
// Ядро никогда не читает сессию само - личность приходит извне
type Principal struct {
	ID   int64
	Role Role
}

// IsAdmin returns true if the principal is an administrator
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccessCustomer returns true if the principal may act on behalf
// of the given customer
func (p Principal) CanAccessCustomer(customerID int64) bool {
	return p.IsAdmin() || (p.Role == RoleCustomer && p.ID == customerID)
}
