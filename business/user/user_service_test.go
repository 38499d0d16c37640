package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"bobTheBar/domain"
	"bobTheBar/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	if f.findErr != nil {
		return domain.User{}, f.findErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func newTestService(repo UserRepository) *userService {
	return NewUserService(repo, validator.New(), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	created, err := svc.Register(context.Background(), &domain.User{
		Username: "bob",
		Email:    "Bob@Example.com",
		Password: "longenough",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	assert.Equal(t, "bob@example.com", created.Email)
	assert.Equal(t, domain.RoleMember, created.Role)
	assert.Empty(t, created.Password)
	assert.NotEqual(t, "longenough", repo.byEmail["bob@example.com"].Password)

	token, user, err := svc.Login(context.Background(), "bob@example.com", "longenough")
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)

	claims, err := utils.ParseJWT("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, domain.RoleMember, claims.Role)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	cases := []domain.User{
		{Username: "bo", Email: "bob@example.com", Password: "longenough"},
		{Username: "bob", Email: "not-an-email", Password: "longenough"},
		{Username: "bob", Email: "bob@example.com", Password: "short"},
	}
	for _, u := range cases {
		_, err := svc.Register(context.Background(), &u)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "%+v", u)
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &domain.User{Username: "bobby", Email: "bob@example.com", Password: "longenough"})
	assert.True(t, errors.Is(err, domain.ErrEmailTaken))
}

func TestRegister_StoreFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("connection reset")

	_, err := newTestService(repo).Register(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com", Password: "longenough"})
	assert.True(t, errors.Is(err, domain.ErrUpstreamFailure))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newTestService(newFakeUserRepo())
	_, err := svc.Register(context.Background(), &domain.User{Username: "bob", Email: "bob@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "bob@example.com", "wrong-password")
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "longenough")
	assert.True(t, errors.Is(err, domain.ErrInvalidCredentials))
}
