package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"autosalon/internal/domain"
	"autosalon/internal/pkg/jwt"
	"autosalon/internal/repository"
	"autosalon/internal/storage"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func newTestService(repo *mockUserRepo) (*Service, *storage.MemoryBackend, *jwt.Service) {
	backend := storage.NewMemoryBackend()
	tokens := jwt.New("test-secret", time.Hour)
	svc := NewService(repo, tokens, storage.NewStore(backend, zap.NewNop()), nil, zap.NewNop())
	return svc, backend, tokens
}

func userWithPassword(t *testing.T, id int64, role domain.UserRole, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{ID: id, Username: "ivan", Email: "ivan@example.com", PasswordHash: string(hash), Role: role}
}

func TestService_Register_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)

	repo.On("ExistsByEmail", mock.Anything, "ivan@example.com").Return(false, nil)
	repo.On("ExistsByUsername", mock.Anything, "ivan").Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ivan@example.com" &&
			u.Role == domain.RoleClient &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")) == nil
	})).Return(nil)

	user, err := svc.Register(context.Background(), RegisterRequest{
		Username: "ivan",
		Email:    " Ivan@Example.com ",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestService_Register_EmailTaken(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)
	repo.On("ExistsByEmail", mock.Anything, "ivan@example.com").Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "ivan", Email: "ivan@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_DuplicateOnInsert(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)
	repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("ExistsByUsername", mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "ivan", Email: "ivan@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_Login_StoresToken(t *testing.T) {
	repo := new(mockUserRepo)
	svc, backend, tokens := newTestService(repo)
	repo.On("GetByEmail", mock.Anything, "ivan@example.com").
		Return(userWithPassword(t, 9, domain.RoleManager, "secret1"), nil)

	res, err := svc.Login(context.Background(), "scope-1", LoginRequest{Login: "ivan@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.True(t, res.State.IsAuthenticated())
	assert.True(t, res.State.IsManager())
	assert.Empty(t, res.User.PasswordHash)

	claims, err := tokens.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)

	raw, err := backend.Get(context.Background(), "scope-1", TokenKey)
	require.NoError(t, err)
	assert.JSONEq(t, `"`+res.Token+`"`, string(raw))
	assert.Equal(t, res.Token, svc.StoredToken(context.Background(), "scope-1"))
}

func TestService_Login_ByUsername(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)
	repo.On("GetByUsername", mock.Anything, "ivan").
		Return(userWithPassword(t, 9, domain.RoleClient, "secret1"), nil)

	_, err := svc.Login(context.Background(), "scope-1", LoginRequest{Login: "ivan", Password: "secret1"})
	assert.NoError(t, err)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc, backend, _ := newTestService(repo)
	repo.On("GetByEmail", mock.Anything, "ivan@example.com").
		Return(userWithPassword(t, 9, domain.RoleClient, "secret1"), nil)

	_, err := svc.Login(context.Background(), "scope-1", LoginRequest{Login: "ivan@example.com", Password: "nope"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, getErr := backend.Get(context.Background(), "scope-1", TokenKey)
	assert.ErrorIs(t, getErr, storage.ErrNotFound)
}

func TestService_Login_UnknownUser(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(context.Background(), "scope-1", LoginRequest{Login: "ghost", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_State_RefetchesProfile(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	svc, _, tokens := newTestService(repo)

	token, err := tokens.GenerateToken(4, "admin")
	require.NoError(t, err)
	require.NoError(t, svc.StoreFor(ctx, "scope-1").SetToken(ctx, token))
	repo.On("GetByID", mock.Anything, int64(4)).
		Return(&domain.User{ID: 4, Username: "boss", Role: domain.RoleAdmin, PasswordHash: "x"}, nil)

	st, err := svc.State(ctx, "scope-1")
	require.NoError(t, err)

	assert.True(t, st.IsAdmin())
	require.NotNil(t, st.User)
	assert.Equal(t, "boss", st.User.Username)
	assert.Empty(t, st.User.PasswordHash)
}

func TestService_State_DropsInvalidToken(t *testing.T) {
	ctx := context.Background()
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)
	require.NoError(t, svc.StoreFor(ctx, "scope-1").SetToken(ctx, "garbage"))

	st, err := svc.State(ctx, "scope-1")
	require.NoError(t, err)

	assert.False(t, st.IsAuthenticated())
	assert.Empty(t, svc.StoredToken(ctx, "scope-1"))
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(new(mockUserRepo))
	require.NoError(t, svc.StoreFor(ctx, "scope-1").SetToken(ctx, "t"))

	require.NoError(t, svc.Logout(ctx, "scope-1"))
	assert.Empty(t, svc.StoredToken(ctx, "scope-1"))
}

func TestService_CurrentUser_Anonymous(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)

	_, err := svc.CurrentUser(context.Background(), 0)

	assert.ErrorIs(t, err, ErrUnauthorized)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_CurrentUser_Missing(t *testing.T) {
	repo := new(mockUserRepo)
	svc, _, _ := newTestService(repo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(nil, repository.ErrNotFound)

	_, err := svc.CurrentUser(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
