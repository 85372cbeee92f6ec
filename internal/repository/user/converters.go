package user

import (
	"freight/internal/entities"
)

func ToDomain(u *UserDB) *entities.Actor {
	if u == nil {
		return nil
	}

	return &entities.Actor{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      entities.RoleType(u.Role),
		CompanyID: u.CompanyID,
	}
}
