package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/models"
	"github.com/sbilibin2017/gw-bookmarker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockEvents := services.NewMockEventSender(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockEvents, bcrypt.MinCost)

	tests := []struct {
		name         string
		username     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantToken    string
		wantCode     domainerrors.Code
		wantErr      error
	}{
		{
			name:      "successful registration",
			username:  "u1",
			wantToken: "token-u1",
		},
		{
			name:         "username taken",
			username:     "bob",
			existingUser: &models.UserDB{ID: 3, Username: "bob"},
			wantCode:     domainerrors.CodeAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "registration lost the race",
			username:  "carol",
			writerErr: domainerrors.AlreadyExists("Please sign up with another username. carol has already been taken."),
			wantCode:  domainerrors.CodeAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any(), tt.username+"@x.com").
					DoAndReturn(func(_ context.Context, username, hash, email string) (*models.UserDB, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1")))
						if tt.writerErr != nil {
							return nil, tt.writerErr
						}
						return &models.UserDB{ID: 1, Username: username, Password: hash, Email: email}, nil
					})
			}
			if tt.wantToken != "" {
				mockJWT.EXPECT().Generate(gomock.Any(), tt.username).Return(tt.wantToken, nil)
				mockEvents.EXPECT().Publish(gomock.Any(), models.EventUserRegistered, tt.username, "")
			}

			token, err := svc.Register(context.Background(), tt.username, "pw1", tt.username+"@x.com")
			switch {
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			case tt.wantCode != "":
				assert.Equal(t, tt.wantCode, domainerrors.GetCode(err))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockEvents := services.NewMockEventSender(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT, mockEvents, bcrypt.MinCost)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.UserDB{ID: 1, Username: "alice", Password: string(hashed)}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			password:  "secret",
			user:      alice,
			wantToken: "token123",
		},
		{
			name:     "unknown user",
			username: "ghost",
			password: "secret",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			user:     alice,
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  "secret",
			readerErr: errors.New("db down"),
			wantErr:   errors.New("db down"),
		},
		{
			name:     "jwt error",
			username: "alice",
			password: "secret",
			user:     alice,
			jwtErr:   errors.New("sign failed"),
			wantErr:  errors.New("sign failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.user, tt.readerErr)

			if tt.user != nil && tt.password == "secret" {
				mockJWT.EXPECT().Generate(gomock.Any(), tt.user.Username).Return(tt.wantToken, tt.jwtErr)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_LoginFailuresLookAlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, nil, nil, nil, bcrypt.MinCost)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{Username: "alice", Password: string(hashed)}, nil)

	_, errUnknown := svc.Login(context.Background(), "ghost", "secret")
	_, errWrong := svc.Login(context.Background(), "alice", "nope")

	assert.Equal(t, errUnknown, errWrong)
	assert.True(t, domainerrors.Is(errUnknown, domainerrors.ErrUnauthorized))
}
