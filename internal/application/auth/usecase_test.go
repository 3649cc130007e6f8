package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Despensa-api/pkg/jwt"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "secret-de-pruebas-unitarias",
	ExpMinutes: 60,
	Issuer:     "despensa-api-test",
}

func TestRegister_EmiteTokenValido(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTCfg)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Name:     "Ana",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err, "el token emitido debe ser parseable con el mismo secret")
	assert.Equal(t, out.UserID, userID)
	assert.Equal(t, "operador", role, "los registros nuevos entran como operador")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTCfg)

	in := dto.RegisterRequest{Email: "ana@tienda.com", Password: "contraseña-larga"}
	_, err := uc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "corta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@tienda.com",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "contraseña-larga",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@tienda.com",
		Password: "otra-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewUseCase(newMemUserRepo(), testJWTCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@tienda.com",
		Password: "cualquiera",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
