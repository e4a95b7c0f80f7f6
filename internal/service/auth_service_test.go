package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarin/tasko/internal/domain"
)

// memUserRepo stores users keyed by normalized email.
type memUserRepo struct {
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
	creates int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[uuid.UUID]domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *memUserRepo) Create(_ context.Context, u *domain.User) error {
	r.creates++
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	out := u
	return &out, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := r.byID[id]
	return &u, nil
}

func (r *memUserRepo) Update(_ context.Context, u *domain.User) error {
	r.byID[u.ID] = *u
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	u, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byEmail, u.Email)
	delete(r.byID, id)
	return true, nil
}

const testSecret = "test-secret"

func TestRegister_StoresNormalizedEmailAndHash(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	s := NewAuthService(repo, testSecret)

	resp, err := s.Register(context.Background(), RegisterInput{
		Name:     "Ana",
		Email:    "a@B.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "a@b.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, "Sup3rSecret", resp.User.PasswordHash, "password must never be stored in plaintext")
	assert.NotContains(t, resp.User.PasswordHash, "Sup3rSecret")
}

func TestRegister_DuplicateEmailAnyCase(t *testing.T) {
	t.Parallel()

	s := NewAuthService(newMemUserRepo(), testSecret)

	_, err := s.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	_, err = s.Register(context.Background(), RegisterInput{Name: "Imposter", Email: "ANA@Example.COM", Password: "Sup3rSecret"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	t.Parallel()

	s := NewAuthService(newMemUserRepo(), testSecret)

	reg, err := s.Register(context.Background(), RegisterInput{Name: "Ana", Email: "a@B.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	resp, err := s.Login(context.Background(), LoginInput{Email: "A@b.COM", Password: "Sup3rSecret"})
	require.NoError(t, err)

	assert.Equal(t, reg.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	s := NewAuthService(newMemUserRepo(), testSecret)

	_, err := s.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), LoginInput{Email: "ana@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestLogin_UnknownEmailDoesNotProvision(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	s := NewAuthService(repo, testSecret)

	// Unknown email fails with the same error as a wrong password and must
	// never silently create an account.
	_, err := s.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.ErrorIs(t, err, ErrInvalidCreds)
	assert.Zero(t, repo.creates)
}

func TestToken_CarriesUserID(t *testing.T) {
	t.Parallel()

	s := NewAuthService(newMemUserRepo(), testSecret)

	resp, err := s.Register(context.Background(), RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.String(), sub)
}

func TestPasswordHash_RoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := hashPassword("Sup3rSecret")
	require.NoError(t, err)

	assert.True(t, verifyPassword("Sup3rSecret", hash))
	assert.False(t, verifyPassword("sup3rsecret", hash))
	assert.False(t, verifyPassword("", hash))
	assert.False(t, verifyPassword("Sup3rSecret", "not-an-encoded-hash"))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a@b.com", NormalizeEmail("  a@B.com "))
	assert.Equal(t, "a@b.com", NormalizeEmail("A@B.COM"))
}
