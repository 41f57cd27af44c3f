package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/duboisderek/lottodraw/internal/domain"
	"github.com/duboisderek/lottodraw/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockBalanceProvider, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockRepo(ctrl)
	ledger := NewMockBalanceProvider(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(userRepo, ledger, hashService, jwtService)
	defer ctrl.Finish()
	return service, userRepo, ledger, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, ledger, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "player1",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1, Login: "player1"}, nil)
				ledger.EXPECT().CreateBalance(gomock.Any(), 1).Return(&domain.Balance{UserID: 1}, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Username already taken",
			login:    "player1",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(&domain.User{ID: 1, Login: "player1"}, nil)
			},
			expectedError: errors.New("username already taken"),
		},
		{
			name:     "Error finding user",
			login:    "player1",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "player1",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating user",
			login:    "player1",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("creation error"))
			},
			expectedError: errors.New("creation error"),
		},
		{
			name:     "Error creating balance",
			login:    "player1",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(nil, nil)
				hashService.EXPECT().HashPassword("password").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 1, Login: "player1"}, nil)
				ledger.EXPECT().CreateBalance(gomock.Any(), 1).Return(nil, errors.New("balance error"))
			},
			expectedError: errors.New("balance error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.login, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.login, user.Login)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "player1",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(&domain.User{ID: 1, Login: "player1", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "password").Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "User not found",
			login:    "ghost",
			password: "password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, nil)
			},
			expectedError: errors.New("invalid credentials"),
		},
		{
			name:     "Wrong password",
			login:    "player1",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "player1").Return(&domain.User{ID: 1, Login: "player1", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "wrong").Return(false)
			},
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), tt.login, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		user          *domain.User
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Token for a player",
			user: &domain.User{ID: 1},
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, false, gomock.Any()).Return("playerToken", nil)
			},
			expectedToken: "playerToken",
		},
		{
			name: "Token carries the admin flag",
			user: &domain.User{ID: 2, IsAdmin: true},
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(2, true, gomock.Any()).Return("adminToken", nil)
			},
			expectedToken: "adminToken",
		},
		{
			name: "Signing error",
			user: &domain.User{ID: 1},
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, false, gomock.Any()).Return("", errors.New("signing error"))
			},
			expectedError: errors.New("signing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			token, err := service.GenerateToken(tt.user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
