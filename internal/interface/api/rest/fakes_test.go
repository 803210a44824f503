package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"marketplace-api/internal/domain/rating"
	domain "marketplace-api/internal/domain/user"
)

const testSecret = "test-secret"

type FakeUserService struct {
	FindUsersFunc            func(ctx context.Context) (domain.Users, error)
	FindUserByIDFunc         func(ctx context.Context, id domain.UUID) (*domain.User, error)
	FindUserByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	CreateUserFunc           func(ctx context.Context, p domain.CreateParams) (*domain.User, error)
	UpdateUserFunc           func(ctx context.Context, id domain.UUID, p domain.UpdateParams) (*domain.User, error)
	UpdateProfilePictureFunc func(ctx context.Context, id domain.UUID, file *multipart.FileHeader) (*domain.User, error)
	DeleteUserFunc           func(ctx context.Context, id domain.UUID) (*domain.User, error)
	AuthenticateFunc         func(ctx context.Context, username, password string) (string, error)
}

var errNotUsed = errors.New("not used")

func (f *FakeUserService) FindUsers(ctx context.Context) (domain.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUsersFunc(ctx)
}
func (f *FakeUserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if f.FindUserByUsernameFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUserByUsernameFunc(ctx, username)
}
func (f *FakeUserService) CreateUser(ctx context.Context, p domain.CreateParams) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserFunc(ctx, p)
}
func (f *FakeUserService) UpdateUser(ctx context.Context, id domain.UUID, p domain.UpdateParams) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateUserFunc(ctx, id, p)
}
func (f *FakeUserService) UpdateProfilePicture(ctx context.Context, id domain.UUID, file *multipart.FileHeader) (*domain.User, error) {
	if f.UpdateProfilePictureFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateProfilePictureFunc(ctx, id, file)
}
func (f *FakeUserService) DeleteUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.DeleteUserFunc == nil {
		return nil, errNotUsed
	}
	return f.DeleteUserFunc(ctx, id)
}
func (f *FakeUserService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if f.AuthenticateFunc == nil {
		return "", errNotUsed
	}
	return f.AuthenticateFunc(ctx, username, password)
}

type FakeRatingService struct {
	FindRatingsFunc          func(ctx context.Context) (rating.Ratings, error)
	FindRatingByIDFunc       func(ctx context.Context, id rating.UUID) (*rating.Rating, error)
	FindRatingsByProductFunc func(ctx context.Context, productID rating.UUID) (rating.Ratings, error)
	CreateRatingFunc         func(ctx context.Context, p rating.CreateParams) (*rating.Rating, error)
	UpdateRatingFunc         func(ctx context.Context, id rating.UUID, p rating.UpdateParams) (*rating.Rating, error)
	DeleteRatingFunc         func(ctx context.Context, id rating.UUID) (*rating.Rating, error)
}

func (f *FakeRatingService) FindRatings(ctx context.Context) (rating.Ratings, error) {
	if f.FindRatingsFunc == nil {
		return nil, errNotUsed
	}
	return f.FindRatingsFunc(ctx)
}
func (f *FakeRatingService) FindRatingByID(ctx context.Context, id rating.UUID) (*rating.Rating, error) {
	if f.FindRatingByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindRatingByIDFunc(ctx, id)
}
func (f *FakeRatingService) FindRatingsByProduct(ctx context.Context, productID rating.UUID) (rating.Ratings, error) {
	if f.FindRatingsByProductFunc == nil {
		return nil, errNotUsed
	}
	return f.FindRatingsByProductFunc(ctx, productID)
}
func (f *FakeRatingService) CreateRating(ctx context.Context, p rating.CreateParams) (*rating.Rating, error) {
	if f.CreateRatingFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateRatingFunc(ctx, p)
}
func (f *FakeRatingService) UpdateRating(ctx context.Context, id rating.UUID, p rating.UpdateParams) (*rating.Rating, error) {
	if f.UpdateRatingFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateRatingFunc(ctx, id, p)
}
func (f *FakeRatingService) DeleteRating(ctx context.Context, id rating.UUID) (*rating.Rating, error) {
	if f.DeleteRatingFunc == nil {
		return nil, errNotUsed
	}
	return f.DeleteRatingFunc(ctx, id)
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

func SignJWT(secret, userID string, exp time.Duration) (string, error) {
	type Claims struct {
		UserID   string `json:"user_id"`
		IsStaff  bool   `json:"is_staff"`
		IsFarmer bool   `json:"is_farmer"`
		jwtv5.RegisteredClaims
	}
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ExpiresAt: jwtv5.NewNumericDate(time.Now().Add(exp)),
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

const testSubject = "5d3c6a1e-8f0b-4b8e-9b55-1f7a9d2e4c10"

func bearer(t *testing.T) map[string]string {
	t.Helper()

	tok, err := SignJWT(testSecret, testSubject, time.Hour)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}
