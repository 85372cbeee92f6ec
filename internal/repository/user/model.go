package user

type UserDB struct {
	ID        int64
	Email     string
	Name      string
	Role      string
	CompanyID *int64
}
