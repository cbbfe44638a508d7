package auth_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camaradigital/proposicoes-api/internal/application/auth"
	"github.com/camaradigital/proposicoes-api/internal/application/dto"
	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/infrastructure/redisstore"
	"github.com/camaradigital/proposicoes-api/pkg/jwt"
)

func novoAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisstore.NewFromClient(client)
	return auth.NewAuthUseCase(
		redisstore.NewUsuarioRepository(store),
		redisstore.NewSessaoRepository(store),
		auth.JWTConfig{Secret: "segredo-de-teste", ExpMinutes: 60, Issuer: "proposicoes-api"},
	)
}

func TestLogin_CredenciaisDaSemente(t *testing.T) {
	uc := novoAuthUseCase(t)

	resp, err := uc.Login(dto.LoginRequest{Login: "admin", Senha: "admin123"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Usuario.Login)
	assert.NotEmpty(t, resp.Usuario.Perfil, "perfil deve vir no payload")

	// o token carrega id e perfil verificáveis
	userID, perfil, err := jwt.Parse("segredo-de-teste", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.Usuario.ID, userID)
	assert.Equal(t, resp.Usuario.Perfil, perfil)
}

// Senha errada e login inexistente produzem o mesmo erro genérico, sem
// revelar qual dos dois falhou.
func TestLogin_FalhaGenerica(t *testing.T) {
	uc := novoAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Login: "admin", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)

	_, err = uc.Login(dto.LoginRequest{Login: "fantasma", Senha: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)

	// falha de login não materializa sessão
	atual, err := uc.Current()
	require.NoError(t, err)
	assert.Nil(t, atual)
}

func TestLogin_SessaoPersisteEEncerra(t *testing.T) {
	uc := novoAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Login: "vereador", Senha: "vereador123"})
	require.NoError(t, err)

	atual, err := uc.Current()
	require.NoError(t, err)
	require.NotNil(t, atual)
	assert.Equal(t, "vereador", atual.Login)

	require.NoError(t, uc.Logout())

	atual, err = uc.Current()
	require.NoError(t, err)
	assert.Nil(t, atual, "logout deve limpar a sessão ativa")
}

// Um segundo login substitui a sessão anterior em vez de acumular.
func TestLogin_SubstituiSessaoAnterior(t *testing.T) {
	uc := novoAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Login: "admin", Senha: "admin123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Login: "vereador", Senha: "vereador123"})
	require.NoError(t, err)

	atual, err := uc.Current()
	require.NoError(t, err)
	require.NotNil(t, atual)
	assert.Equal(t, "vereador", atual.Login)
}
