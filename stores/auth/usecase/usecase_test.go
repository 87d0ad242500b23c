package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/arrematec/goapi/base/ctx"
	"github.com/arrematec/goapi/domain"
	"github.com/arrematec/goapi/domain/user"
	mUser "github.com/arrematec/goapi/domain/user/mocks"
	"github.com/arrematec/goapi/stores/auth/usecase"
	user_usecase "github.com/arrematec/goapi/stores/user/usecase"
)

func TestLoginAndParseToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUserRepo := &mUser.Repo{}
	mockUserRepo.On("FindByUsername", mock.Anything, "alice").
		Return(&user.User{Username: "alice", PasswordHash: string(hash)}, nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", user_usecase.New(mockUserRepo))

	tkn, err := u.Login(ctx, "alice", "hunter2")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	username, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUserRepo := &mUser.Repo{}
	mockUserRepo.On("FindByUsername", mock.Anything, "alice").
		Return(&user.User{Username: "alice", PasswordHash: string(hash)}, nil)

	u := usecase.New("jwt-secret", user_usecase.New(mockUserRepo))

	_, err = u.Login(ctx.Background(), "alice", "wrong")
	assert.Equal(t, domain.ErrInvalidCredentials, err)
}

func TestLoginUnknownUser(t *testing.T) {
	mockUserRepo := &mUser.Repo{}
	mockUserRepo.On("FindByUsername", mock.Anything, "ghost").
		Return(nil, domain.ErrNotFound)

	u := usecase.New("jwt-secret", user_usecase.New(mockUserRepo))

	_, err := u.Login(ctx.Background(), "ghost", "hunter2")
	assert.Equal(t, domain.ErrInvalidCredentials, err)
}

func TestParseTokenRejectsForeignSecret(t *testing.T) {
	mockUserRepo := &mUser.Repo{}
	mockUserRepo.On("FindByUsername", mock.Anything, "alice").
		Return(&user.User{Username: "alice", PasswordHash: mustHash("hunter2")}, nil)

	issuer := usecase.New("secret-a", user_usecase.New(mockUserRepo))
	verifier := usecase.New("secret-b", user_usecase.New(mockUserRepo))

	tkn, err := issuer.Login(ctx.Background(), "alice", "hunter2")
	assert.NoError(t, err)

	_, err = verifier.ParseToken(ctx.Background(), tkn)
	assert.Equal(t, domain.ErrInvalidToken, err)
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
