package user

import (
	"marketplace-api/internal/domain/user"
)

// ToResponseUser never carries the password hash.
func ToResponseUser(uDomain user.User) User {
	return User{
		ID:                uDomain.ID,
		Username:          uDomain.Username,
		FirstName:         uDomain.FirstName,
		LastName:          uDomain.LastName,
		PhoneNumber:       uDomain.PhoneNumber,
		Address:           uDomain.Address,
		ProfilePictureURL: uDomain.ProfilePictureURL,
		IsStaff:           uDomain.IsStaff,
		IsFarmer:          uDomain.IsFarmer,
		CreatedAt:         uDomain.CreatedAt,
		UpdatedAt:         uDomain.UpdatedAt,
	}
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToCreateParams(r Request) user.CreateParams {
	return user.CreateParams{
		Username:    r.Username,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		IsFarmer:    r.IsFarmer,
	}
}

func ToUpdateParams(r UpdateRequest) user.UpdateParams {
	return user.UpdateParams{
		Username:    r.Username,
		Password:    r.Password,
		NewPassword: r.NewPassword,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		IsFarmer:    r.IsFarmer,
	}
}
