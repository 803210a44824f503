package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scan(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&u.PhoneNumber,
		&u.Address,
		&u.ProfilePictureURL,
		&u.IsStaff,
		&u.IsFarmer,
		&u.PasswordHash,

		&u.CreatedAt,
		&u.UpdatedAt,
	)

	return u, err
}

// fetchOne maps "no rows" to (nil, nil) and a username clash to ErrUsernameTaken.
func fetchOne(row pgx.Row, op string) (*user.User, error) {
	u, err := scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrUsernameTaken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	defer rows.Close()

	us := Users{}
	for rows.Next() {
		u, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	return fromDBModels(us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.UUID) (*user.User, error) {
	return fetchOne(r.db.QueryRow(ctx, SelectUserByID, id), "fetch user by id")
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	return fetchOne(r.db.QueryRow(ctx, SelectUserByUsername, username), "fetch user by username")
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	row := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.FirstName, req.LastName, req.PhoneNumber, req.Address, req.IsStaff, req.IsFarmer, req.PasswordHash,
	)

	return fetchOne(row, "create user")
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	row := r.db.QueryRow(
		ctx,
		UpdateUserByID,
		req.Username, req.FirstName, req.LastName, req.PhoneNumber, req.Address, req.IsFarmer, req.PasswordHash, req.ID,
	)

	return fetchOne(row, "update user")
}

func (r *Repository) UpdateProfilePicture(ctx context.Context, id user.UUID, url string) (*user.User, error) {
	return fetchOne(r.db.QueryRow(ctx, UpdateProfilePictureByID, url, id), "update profile picture")
}

func (r *Repository) DeleteUser(ctx context.Context, id user.UUID) (*user.User, error) {
	return fetchOne(r.db.QueryRow(ctx, DeleteUserByID, id), "delete user")
}
