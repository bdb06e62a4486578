//go:generate mockgen
package application

import (
	"testing"

	authmocks "github.com/Lexv0lk/secondhand-market/gen/mocks/auth"
	jwtmocks "github.com/Lexv0lk/secondhand-market/gen/mocks/jwt"
	"github.com/Lexv0lk/secondhand-market/internal/auth/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/jwt"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthenticator_Register(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name                      string
		username, email, password string

		prepareFn func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher)

		expectedAccount domain.Account
		expectedErr     error
	}

	tests := []testCase{
		{
			name:     "new user created with start balance",
			username: " alice ",
			email:    " Alice@Example.com",
			password: "password123",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)

				passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				usersRepo.EXPECT().CreateUser(gomock.Any(), domain.Registration{
					Username:     "alice",
					Email:        "alice@example.com",
					PasswordHash: "hashed_password",
					StartBalance: 100000,
				}).Return(domain.Account{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "hashed_password"}, nil)

				return usersRepo, passwordHasher
			},
			expectedAccount: domain.Account{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "hashed_password"},
		},
		{
			name:     "duplicate email",
			username: "alice",
			email:    "alice@example.com",
			password: "password123",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)

				passwordHasher.EXPECT().HashPassword("password123").Return("hashed_password", nil)
				usersRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(domain.Account{}, &domain.EmailTakenError{Msg: "email alice@example.com is already registered"})

				return usersRepo, passwordHasher
			},
			expectedErr: &domain.EmailTakenError{},
		},
		{
			name:     "short password",
			username: "alice",
			email:    "alice@example.com",
			password: "short",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher) {
				return authmocks.NewMockUsersRepository(ctrl), authmocks.NewMockPasswordHasher(ctrl)
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:     "error hashing password",
			username: "alice",
			email:    "alice@example.com",
			password: "password123",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher) {
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				passwordHasher.EXPECT().HashPassword("password123").Return("", assert.AnError)

				return authmocks.NewMockUsersRepository(ctrl), passwordHasher
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			usersRepoMock, passwordHasherMock := tc.prepareFn(t, ctrl)
			authenticator := NewAuthenticator(usersRepoMock, passwordHasherMock, jwtmocks.NewMockTokenIssuer(ctrl), "secret", 100000)

			account, err := authenticator.Register(t.Context(), tc.username, tc.email, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedAccount, account)
			}
		})
	}
}

func TestAuthenticator_Login(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name            string
		email, password string

		prepareFn func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer)

		expectedToken string
		expectedErr   error
	}

	stored := domain.Account{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "stored_hash"}

	tests := []testCase{
		{
			name:     "correct password",
			email:    "Bob@example.com",
			password: "correctpassword",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				tokenIssuer := jwtmocks.NewMockTokenIssuer(ctrl)

				usersRepo.EXPECT().TryGetAccountByEmail(gomock.Any(), "bob@example.com").Return(stored, true, nil)
				passwordHasher.EXPECT().VerifyPassword("correctpassword", "stored_hash").Return(true, nil)
				tokenIssuer.EXPECT().IssueToken([]byte("secret"), 2, "bob@example.com", tokenTimeLimit).Return("jwt_token", nil)

				return usersRepo, passwordHasher, tokenIssuer
			},
			expectedToken: "jwt_token",
		},
		{
			name:     "incorrect password",
			email:    "bob@example.com",
			password: "wrongpassword",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)

				usersRepo.EXPECT().TryGetAccountByEmail(gomock.Any(), "bob@example.com").Return(stored, true, nil)
				passwordHasher.EXPECT().VerifyPassword("wrongpassword", "stored_hash").Return(false, nil)

				return usersRepo, passwordHasher, jwtmocks.NewMockTokenIssuer(ctrl)
			},
			expectedErr: &domain.CredentialsMismatchError{},
		},
		{
			name:     "suspended account",
			email:    "bob@example.com",
			password: "correctpassword",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)

				suspended := stored
				suspended.IsSuspended = true

				usersRepo.EXPECT().TryGetAccountByEmail(gomock.Any(), "bob@example.com").Return(suspended, true, nil)
				passwordHasher.EXPECT().VerifyPassword("correctpassword", "stored_hash").Return(true, nil)

				return usersRepo, passwordHasher, jwtmocks.NewMockTokenIssuer(ctrl)
			},
			expectedErr: &domain.UserSuspendedError{},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				usersRepo.EXPECT().TryGetAccountByEmail(gomock.Any(), "nobody@example.com").Return(domain.Account{}, false, nil)

				return usersRepo, authmocks.NewMockPasswordHasher(ctrl), jwtmocks.NewMockTokenIssuer(ctrl)
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:     "error getting account",
			email:    "bob@example.com",
			password: "password123",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				usersRepo.EXPECT().TryGetAccountByEmail(gomock.Any(), "bob@example.com").Return(domain.Account{}, false, assert.AnError)

				return usersRepo, authmocks.NewMockPasswordHasher(ctrl), jwtmocks.NewMockTokenIssuer(ctrl)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "error verifying password",
			email:    "bob@example.com",
			password: "password123",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)

				usersRepo.EXPECT().TryGetAccountByEmail(gomock.Any(), "bob@example.com").Return(stored, true, nil)
				passwordHasher.EXPECT().VerifyPassword("password123", "stored_hash").Return(false, assert.AnError)

				return usersRepo, passwordHasher, jwtmocks.NewMockTokenIssuer(ctrl)
			},
			expectedErr: assert.AnError,
		},
		{
			name:     "error issuing token",
			email:    "bob@example.com",
			password: "correctpassword",
			prepareFn: func(t *testing.T, ctrl *gomock.Controller) (domain.UsersRepository, domain.PasswordHasher, jwt.TokenIssuer) {
				usersRepo := authmocks.NewMockUsersRepository(ctrl)
				passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
				tokenIssuer := jwtmocks.NewMockTokenIssuer(ctrl)

				usersRepo.EXPECT().TryGetAccountByEmail(gomock.Any(), "bob@example.com").Return(stored, true, nil)
				passwordHasher.EXPECT().VerifyPassword("correctpassword", "stored_hash").Return(true, nil)
				tokenIssuer.EXPECT().IssueToken([]byte("secret"), 2, "bob@example.com", tokenTimeLimit).Return("", assert.AnError)

				return usersRepo, passwordHasher, tokenIssuer
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			usersRepoMock, passwordHasherMock, tokenIssuerMock := tc.prepareFn(t, ctrl)
			authenticator := NewAuthenticator(usersRepoMock, passwordHasherMock, tokenIssuerMock, "secret", 100000)

			token, err := authenticator.Login(t.Context(), tc.email, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedToken, token)
			}
		})
	}
}

func TestAuthenticator_ChangePassword(t *testing.T) {
	t.Parallel()

	stored := domain.Account{ID: 2, Username: "bob", Email: "bob@example.com", PasswordHash: "old_hash"}

	type testCase struct {
		name                         string
		currentPassword, newPassword string

		prepareFn func(t *testing.T, usersRepo *authmocks.MockUsersRepository, passwordHasher *authmocks.MockPasswordHasher)

		expectedErr error
	}

	tests := []testCase{
		{
			name:            "password replaced",
			currentPassword: "password123",
			newPassword:     "better-password",
			prepareFn: func(t *testing.T, usersRepo *authmocks.MockUsersRepository, passwordHasher *authmocks.MockPasswordHasher) {
				usersRepo.EXPECT().TryGetAccountByID(gomock.Any(), 2).Return(stored, true, nil)
				passwordHasher.EXPECT().VerifyPassword("password123", "old_hash").Return(true, nil)
				passwordHasher.EXPECT().HashPassword("better-password").Return("new_hash", nil)
				usersRepo.EXPECT().UpdatePasswordHash(gomock.Any(), 2, "new_hash").Return(nil)
			},
		},
		{
			name:            "wrong current password",
			currentPassword: "guess1234",
			newPassword:     "better-password",
			prepareFn: func(t *testing.T, usersRepo *authmocks.MockUsersRepository, passwordHasher *authmocks.MockPasswordHasher) {
				usersRepo.EXPECT().TryGetAccountByID(gomock.Any(), 2).Return(stored, true, nil)
				passwordHasher.EXPECT().VerifyPassword("guess1234", "old_hash").Return(false, nil)
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:            "new password too short",
			currentPassword: "password123",
			newPassword:     "short",
			prepareFn: func(t *testing.T, usersRepo *authmocks.MockUsersRepository, passwordHasher *authmocks.MockPasswordHasher) {
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "current password missing",
			newPassword: "better-password",
			prepareFn: func(t *testing.T, usersRepo *authmocks.MockUsersRepository, passwordHasher *authmocks.MockPasswordHasher) {
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:            "account vanished",
			currentPassword: "password123",
			newPassword:     "better-password",
			prepareFn: func(t *testing.T, usersRepo *authmocks.MockUsersRepository, passwordHasher *authmocks.MockPasswordHasher) {
				usersRepo.EXPECT().TryGetAccountByID(gomock.Any(), 2).Return(domain.Account{}, false, nil)
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:            "error hashing new password",
			currentPassword: "password123",
			newPassword:     "better-password",
			prepareFn: func(t *testing.T, usersRepo *authmocks.MockUsersRepository, passwordHasher *authmocks.MockPasswordHasher) {
				usersRepo.EXPECT().TryGetAccountByID(gomock.Any(), 2).Return(stored, true, nil)
				passwordHasher.EXPECT().VerifyPassword("password123", "old_hash").Return(true, nil)
				passwordHasher.EXPECT().HashPassword("better-password").Return("", assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			usersRepo := authmocks.NewMockUsersRepository(ctrl)
			passwordHasher := authmocks.NewMockPasswordHasher(ctrl)
			tc.prepareFn(t, usersRepo, passwordHasher)

			authenticator := NewAuthenticator(usersRepo, passwordHasher, jwtmocks.NewMockTokenIssuer(ctrl), "secret", 100000)
			err := authenticator.ChangePassword(t.Context(), 2, tc.currentPassword, tc.newPassword)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
