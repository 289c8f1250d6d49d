package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"autosalon/internal/domain"
	"autosalon/internal/notify"
	"autosalon/internal/repository"
	"autosalon/internal/storage"
)

const (
	msgLoggedIn  = "Вход выполнен успешно!"
	msgLoggedOut = "Выход выполнен"
)

// Service contains account logic and keeps the per-client auth stores in
// sync with it.
type Service struct {
	users  UserRepositoryInterface
	jwt    jwtService
	store  *storage.Store
	center *notify.Center
	log    *zap.Logger
}

type LoginResult struct {
	User  *domain.User
	Token string
	State State
}

func NewService(users UserRepositoryInterface, jwt jwtService, store *storage.Store, center *notify.Center, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{users: users, jwt: jwt, store: store, center: center, log: log}
}

// StoreFor opens the auth store of one client scope.
func (s *Service) StoreFor(ctx context.Context, scope string) *Store {
	return NewStore(ctx, s.store.Scope(scope), s.log.With(zap.String("scope", scope)))
}

func (s *Service) notifier(scope string) notify.Notifier {
	if s.center == nil {
		return notify.Discard
	}
	return s.center.For(scope)
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Username = strings.TrimSpace(req.Username)

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}
	exists, err = s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         domain.RoleClient,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// гонка между проверкой и вставкой
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login checks the credentials, issues a token and saves it in the
// client's auth store.
func (s *Service) Login(ctx context.Context, scope string, req LoginRequest) (*LoginResult, error) {
	user, err := s.findByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	st := s.StoreFor(ctx, scope)
	if err := st.SetToken(ctx, token); err != nil {
		s.log.Warn("login token not persisted", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	st.SetUser(user)
	s.notifier(scope).Notify(msgLoggedIn, notify.KindSuccess)

	return &LoginResult{User: user, Token: token, State: st.State()}, nil
}

func (s *Service) findByLogin(ctx context.Context, login string) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if strings.Contains(login, "@") {
		return s.users.GetByEmail(ctx, login)
	}
	return s.users.GetByUsername(ctx, login)
}

func (s *Service) Logout(ctx context.Context, scope string) error {
	err := s.StoreFor(ctx, scope).Logout(ctx)
	s.notifier(scope).Notify(msgLoggedOut, notify.KindSuccess)
	return err
}

// State loads the client's auth state with a fresh profile.
func (s *Service) State(ctx context.Context, scope string) (State, error) {
	st := s.StoreFor(ctx, scope)
	if err := s.Hydrate(ctx, st); err != nil {
		return st.State(), err
	}
	return st.State(), nil
}

// Hydrate reloads the profile behind the stored token. A token that no
// longer validates, or whose user is gone, is dropped from the store.
func (s *Service) Hydrate(ctx context.Context, st *Store) error {
	token := st.Token()
	if token == "" {
		return nil
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		s.log.Info("dropping stale auth token", zap.Error(err))
		return st.Logout(ctx)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return st.Logout(ctx)
		}
		return err
	}

	user.PasswordHash = ""
	st.SetUser(user)
	return nil
}

// StoredToken returns the token kept by the client, "" when none.
func (s *Service) StoredToken(ctx context.Context, scope string) string {
	return s.StoreFor(ctx, scope).Token()
}

func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// HashPassword is exported for the seed command.
func HashPassword(password string) (string, error) {
	return hashPassword(password)
}
