package service

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abeke05/Aristotel/internal/models"
	"github.com/Abeke05/Aristotel/internal/repository"
	appErrors "github.com/Abeke05/Aristotel/pkg/errors"
	"github.com/Abeke05/Aristotel/pkg/storage"
)

type mockUserRepo struct {
	users     []models.User
	appendErr error
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) *models.User {
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user
		}
	}
	return nil
}

func (m *mockUserRepo) Append(ctx context.Context, user *models.User) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	if user.ID == "" {
		user.ID = "generated"
	}
	m.users = append(m.users, *user)
	return nil
}

func TestHashPasswordIsDeterministic(t *testing.T) {
	assert.Equal(t, HashPassword("password"), HashPassword("password"))
	assert.NotEqual(t, HashPassword("password"), HashPassword("Password"))
	// sha256("password") is a fixed, well-known digest.
	assert.Equal(t, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", HashPassword("password"))
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := &mockUserRepo{users: []models.User{{
		ID: "u1", Email: "a@university.edu", PasswordHash: HashPassword("secret"), Role: models.RoleStudent,
	}}}
	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Authenticate(context.Background(), "a@university.edu", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthenticateFailureIsUniform(t *testing.T) {
	repo := &mockUserRepo{users: []models.User{{
		ID: "u1", Email: "a@university.edu", PasswordHash: HashPassword("secret"),
	}}}
	svc := NewAuthService(repo, nil, nil)
	ctx := context.Background()

	_, wrongPassword := svc.Authenticate(ctx, "a@university.edu", "nope")
	_, unknownEmail := svc.Authenticate(ctx, "b@university.edu", "secret")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.ErrorIs(t, wrongPassword, appErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, appErrors.ErrInvalidCredentials)
	// The two failure causes must be indistinguishable to the caller.
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestRegisterCreatesUser(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewAuthService(repo, nil, nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Email: "new@university.edu", Name: "New", Role: models.RoleTeacher, Password: "pw",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, HashPassword("pw"), user.PasswordHash)
	assert.Len(t, repo.users, 1)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{users: []models.User{{Email: "a@university.edu"}}}
	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "a@university.edu", Name: "Copy", Role: models.RoleStudent, Password: "pw",
	})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateEmail)
	assert.Len(t, repo.users, 1)
}

func TestRegisterValidatesPayload(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, nil, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@x", Name: "A", Role: "admin", Password: "pw"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Register(ctx, RegisterRequest{Name: "A", Role: models.RoleStudent, Password: "pw"})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestRegisterReportsStorageFailure(t *testing.T) {
	repo := &mockUserRepo{appendErr: errors.New("disk full")}
	svc := NewAuthService(repo, nil, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "a@university.edu", Name: "A", Role: models.RoleStudent, Password: "pw",
	})
	assert.ErrorIs(t, err, appErrors.ErrStorage)
}

func TestRegisterDuplicateLeavesCollectionUntouched(t *testing.T) {
	store, err := storage.Open(t.TempDir(), nil)
	require.NoError(t, err)
	users := repository.NewUserRepository(store)
	svc := NewAuthService(users, nil, nil)
	ctx := context.Background()

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@university.edu", Name: "A", Role: models.RoleStudent, Password: "pw"})
	require.NoError(t, err)

	before, err := os.ReadFile(store.Path("users"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@university.edu", Name: "B", Role: models.RoleTeacher, Password: "other"})
	require.ErrorIs(t, err, appErrors.ErrDuplicateEmail)

	after, err := os.ReadFile(store.Path("users"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
