package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func newTestAuthService(repo *MockUserRepository) AuthService {
	return NewAuthService(repo, auth.NewBcryptHasher(), auth.NewTokenService("test-secret"), time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			userName: "Test User",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email is folded before lookup and storage",
			userName: "Test User",
			email:    "  Test@Example.COM ",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "user already exists",
			userName: "Existing User",
			email:    "existing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrDuplicateUser,
		},
		{
			name:     "concurrent registration loses on unique index",
			userName: "Racer",
			email:    "race@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: apperrors.ErrDuplicateUser,
		},
		{
			name:          "missing name",
			userName:      "  ",
			email:         "test@example.com",
			password:      "password123",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrValidation,
		},
		{
			name:          "missing password",
			userName:      "Test User",
			email:         "test@example.com",
			password:      "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := newTestAuthService(mockRepo)
			user, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "test@example.com", user.Email)
				assert.Equal(t, model.RoleCustomer, user.Role)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	storedUser := &model.User{Name: "Test User", Email: "test@example.com", PasswordHash: hash, Role: model.RoleCustomer}
	storedUser.ID = 42

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(storedUser, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(storedUser, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:          "missing password",
			email:         "test@example.com",
			password:      "",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := newTestAuthService(mockRepo)
			token, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginErrorsAreIndistinguishable(t *testing.T) {
	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	user := &model.User{Email: "known@example.com", PasswordHash: hash}
	user.ID = 1

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "known@example.com").Return(user, nil)
	mockRepo.On("FindByEmail", mock.Anything, "unknown@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestAuthService(mockRepo)

	_, errWrongPassword := svc.Login(context.Background(), "known@example.com", "bad-password")
	_, errUnknownEmail := svc.Login(context.Background(), "unknown@example.com", "bad-password")

	assert.Equal(t, errWrongPassword, errUnknownEmail)
}

func TestAuthService_Authenticate(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")
	user := &model.User{Name: "Test User", Email: "test@example.com", Role: model.RoleCustomer}
	user.ID = 42

	validToken, err := tokens.Issue(42, time.Hour)
	require.NoError(t, err)

	t.Run("valid token resolves fresh user", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(user, nil)

		svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), tokens, time.Hour)
		got, err := svc.Authenticate(context.Background(), validToken)

		assert.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint(42), got.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("deleted user is rejected", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), tokens, time.Hour)
		got, err := svc.Authenticate(context.Background(), validToken)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Nil(t, got)
	})

	t.Run("garbage token is rejected without repo lookup", func(t *testing.T) {
		mockRepo := new(MockUserRepository)

		svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), tokens, time.Hour)
		got, err := svc.Authenticate(context.Background(), "not-a-token")

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Nil(t, got)
		mockRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("token from another secret is rejected", func(t *testing.T) {
		other := auth.NewTokenService("other-secret")
		foreign, err := other.Issue(42, time.Hour)
		require.NoError(t, err)

		mockRepo := new(MockUserRepository)
		svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), tokens, time.Hour)
		got, err := svc.Authenticate(context.Background(), foreign)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		assert.Nil(t, got)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("old-password")
	require.NoError(t, err)

	user := &model.User{Email: "test@example.com", PasswordHash: hash}
	user.ID = 7

	t.Run("wrong old password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newTestAuthService(mockRepo)

		err := svc.ChangePassword(context.Background(), user, "not-the-old-password", "new-password")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		mockRepo.AssertNotCalled(t, "UpdatePasswordHash")
	})

	t.Run("successful change stores a new digest", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("UpdatePasswordHash", mock.Anything, uint(7), mock.MatchedBy(func(h string) bool {
			return h != "" && h != hash
		})).Return(nil)

		svc := newTestAuthService(mockRepo)
		err := svc.ChangePassword(context.Background(), user, "old-password", "new-password")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty new password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc := newTestAuthService(mockRepo)

		err := svc.ChangePassword(context.Background(), user, "old-password", "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

// fakeUserRepository is an in-memory repository for flow tests.
type fakeUserRepository struct {
	nextID  uint
	byID    map[uint]*model.User
	byEmail map[string]*model.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		nextID:  1,
		byID:    make(map[uint]*model.User),
		byEmail: make(map[string]*model.User),
	}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *model.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.byID[user.ID] = &copied
	f.byEmail[user.Email] = &copied
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	user, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = hash
	return nil
}

func TestAuthService_FullFlow(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewAuthService(repo, auth.NewBcryptHasher(), auth.NewTokenService("test-secret"), time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Flow User", "Flow@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "flow@example.com", user.Email)

	// Second registration with a differently-cased email must collide.
	_, err = svc.Register(ctx, "Flow User", "FLOW@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)

	token, err := svc.Login(ctx, "flow@EXAMPLE.com", "password123")
	require.NoError(t, err)

	authed, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	err = svc.ChangePassword(ctx, authed, "password123", "better-password")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "flow@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "flow@example.com", "better-password")
	assert.NoError(t, err)

	// Tokens issued before the change stay valid until expiry.
	stillAuthed, err := svc.Authenticate(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, stillAuthed.ID)
}
