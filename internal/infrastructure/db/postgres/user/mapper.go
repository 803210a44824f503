package user

import (
	domain "marketplace-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:                model.ID,
		Username:          model.Username,
		FirstName:         model.FirstName,
		LastName:          model.LastName,
		PhoneNumber:       model.PhoneNumber,
		Address:           model.Address,
		ProfilePictureURL: model.ProfilePictureURL,
		IsStaff:           model.IsStaff,
		IsFarmer:          model.IsFarmer,
		PasswordHash:      model.PasswordHash,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}
