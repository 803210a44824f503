package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"marketplace-api/internal/application/ports"
	"marketplace-api/internal/domain/errs"
	domain "marketplace-api/internal/domain/user"
	"marketplace-api/internal/infrastructure/mq"
	"marketplace-api/internal/interface/api/rest/dto/user"
)

const maxPictureSize = 5 << 20

type UserService struct {
	userRepository domain.Repository
	auth           ports.Auth
	s3             ports.S3Client
	publisher      ports.Publisher
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	auth ports.Auth,
	s3 ports.S3Client,
	publisher ports.Publisher,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		auth:           auth,
		s3:             s3,
		publisher:      publisher,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = domain.Users{}
	}

	return users, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	return u, nil
}

func (us *UserService) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, p domain.CreateParams) (*domain.User, error) {
	p.Username = strings.TrimSpace(p.Username)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.Address = strings.TrimSpace(p.Address)
	if err := validateStruct(p); err != nil {
		return nil, err
	}

	existing, err := us.userRepository.FetchUserByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := us.auth.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}

	uRet, err := us.userRepository.CreateUser(ctx, domain.User{
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		PhoneNumber:  p.PhoneNumber,
		Address:      p.Address,
		IsFarmer:     p.IsFarmer,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	us.publish(ctx, mq.UserCreated, uRet)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.UUID, p domain.UpdateParams) (*domain.User, error) {
	p.Username = strings.TrimSpace(p.Username)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.PhoneNumber = strings.TrimSpace(p.PhoneNumber)
	p.Address = strings.TrimSpace(p.Address)
	if err := validateStruct(p); err != nil {
		return nil, err
	}

	u, err := us.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Username != u.Username {
		owner, err := us.userRepository.FetchUserByUsername(ctx, p.Username)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID != u.ID {
			return nil, domain.ErrUsernameTaken
		}
	}

	hash := u.PasswordHash
	if p.NewPassword != "" {
		if err = us.auth.VerifyPassword(u, p.Password); err != nil {
			us.mCounter.WithLabelValues("user_password_rejected_total").Inc()
			return nil, err
		}
		if hash, err = us.auth.HashPassword(p.NewPassword); err != nil {
			return nil, err
		}
	}

	uRet, err := us.userRepository.UpdateUser(ctx, domain.User{
		ID:           u.ID,
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		PhoneNumber:  p.PhoneNumber,
		Address:      p.Address,
		IsFarmer:     p.IsFarmer,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, domain.ErrNotFound
	}

	us.publish(ctx, mq.UserUpdated, uRet)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateProfilePicture(
	ctx context.Context,
	id domain.UUID,
	file *multipart.FileHeader,
) (*domain.User, error) {
	if file == nil {
		return nil, errs.Invalid("file", "file is required")
	}
	if file.Size <= 0 || file.Size > maxPictureSize {
		return nil, errs.Invalid("file", "file size must be between 1 byte and 5 MiB")
	}
	mimeType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, errs.Invalid("file", "file must be an image")
	}

	if _, err := us.FindUserByID(ctx, id); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open picture: %w", err)
	}
	defer src.Close()

	key := pictureKey(file.Filename, mimeType, id, time.Now().UTC())
	if err = us.s3.PutObject(ctx, key, mimeType, src, file.Size); err != nil {
		return nil, fmt.Errorf("upload picture: %w", err)
	}

	uRet, err := us.userRepository.UpdateProfilePicture(ctx, id, us.s3.GetPublicURL(key))
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, domain.ErrNotFound
	}

	us.publish(ctx, mq.UserUpdated, uRet)
	us.mCounter.WithLabelValues("user_picture_updated_total").Inc()

	return uRet, nil
}

// DeleteUser removes the user and, through the foreign key, their ratings.
func (us *UserService) DeleteUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	us.publish(ctx, mq.UserDeleted, u)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return u, nil
}

type loginParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (us *UserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	p := loginParams{Username: strings.TrimSpace(username), Password: password}
	if err := validateStruct(p); err != nil {
		return "", err
	}

	u, err := us.userRepository.FetchUserByUsername(ctx, p.Username)
	if err != nil {
		return "", err
	}

	token, err := us.auth.GenerateToken(u, p.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			us.mCounter.WithLabelValues("user_login_failed_total").Inc()
		}
		return "", err
	}

	us.mCounter.WithLabelValues("user_login_total").Inc()

	return token, nil
}

func (us *UserService) publish(ctx context.Context, action string, u *domain.User) {
	us.publisher.Publish(ctx, mq.NewEvent(action, u.ID.String(), user.ToResponseUser(*u)))
}
