package entities

type RoleType string

const (
	RoleAdmin       RoleType = "ADMIN"
	RoleOperator    RoleType = "OPERATOR"
	RoleClientAdmin RoleType = "CLIENT_ADMIN"
)

func (r RoleType) String() string {
	return string(r)
}

// Actor - уже аутентифицированный пользователь запроса.
// CompanyID задан только для ролей, привязанных к компании (CLIENT_ADMIN).
type Actor struct {
	ID        int64
	Email     string
	Name      string
	Role      RoleType
	CompanyID *int64
}
