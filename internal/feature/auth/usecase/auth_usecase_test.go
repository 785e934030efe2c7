package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"rental_admin/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// mockJWTGenerator is a mock implementation of JWTGenerator interface.
type mockJWTGenerator struct {
	// GenerateTokenFunc is called when the GenerateToken method is invoked.
	GenerateTokenFunc func(userID uint, email, role string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockJWTGenerator) GenerateToken(userID uint, email, role string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email, role)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Email:    "admin@dashboard.com",
		Password: string(hashedPassword),
		Role:     entity.RoleAdmin,
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == testUser.Email {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, email, role string) (string, error) {
				if userID != testUser.ID || email != testUser.Email || role != entity.RoleAdmin {
					t.Errorf("unexpected token claims: id=%d email=%q role=%q", userID, email, role)
				}
				return "signed-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		token, user, err := uc.Login(context.Background(), testUser.Email, password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Errorf("expected token 'signed-token', got %q", token)
		}
		if user == nil || user.ID != testUser.ID {
			t.Errorf("expected user %d, got %+v", testUser.ID, user)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		_, _, err := uc.Login(context.Background(), testUser.Email, "wrong-password")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email yields the same error as wrong password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, ErrUserNotFound
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockJWTGenerator{})
		_, _, err := uc.Login(context.Background(), "nobody@example.com", password)

		// Must not reveal whether the account exists
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("token generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, email, role string) (string, error) {
				return "", errors.New("signing failed")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, _, err := uc.Login(context.Background(), testUser.Email, password)

		if err == nil {
			t.Fatal("expected an error")
		}
		if errors.Is(err, ErrInvalidCredentials) {
			t.Error("token failure must not masquerade as bad credentials")
		}
	})
}
