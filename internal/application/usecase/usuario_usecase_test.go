package usecase_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camaradigital/proposicoes-api/internal/application/dto"
	"github.com/camaradigital/proposicoes-api/internal/application/usecase"
	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/infrastructure/redisstore"
)

func novoUsuarioUseCase(t *testing.T) *usecase.UsuarioUseCase {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisstore.NewFromClient(client)
	return usecase.NewUsuarioUseCase(redisstore.NewUsuarioRepository(store))
}

func TestUsuarioCreate_LoginDuplicadoRejeitado(t *testing.T) {
	uc := novoUsuarioUseCase(t)

	// "admin" já existe na semente
	_, err := uc.Create(dto.CreateUsuarioRequest{
		Nome:           "Outro Admin",
		Login:          "admin",
		Senha:          "x",
		ConfirmarSenha: "x",
		Perfil:         entity.PerfilAdminGeral,
	})
	assert.ErrorIs(t, err, domain.ErrLoginJaExiste)
}

func TestUsuarioUpdate_Inexistente(t *testing.T) {
	uc := novoUsuarioUseCase(t)

	_, err := uc.Update("999", dto.UpdateUsuarioRequest{
		Nome:           "Ninguém",
		Login:          "ninguem",
		Senha:          "x",
		ConfirmarSenha: "x",
		Perfil:         entity.PerfilVereador,
	})
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
	// o erro especializado continua casando com o genérico
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestUsuarioUpdate_LoginDeOutroUsuario(t *testing.T) {
	uc := novoUsuarioUseCase(t)

	// tenta dar ao vereador ("2") o login do admin ("1")
	_, err := uc.Update("2", dto.UpdateUsuarioRequest{
		Nome:           "João Vereador",
		Login:          "admin",
		Senha:          "vereador123",
		ConfirmarSenha: "vereador123",
		Perfil:         entity.PerfilVereador,
	})
	assert.ErrorIs(t, err, domain.ErrLoginJaExiste)

	// manter o próprio login não é colisão
	out, err := uc.Update("2", dto.UpdateUsuarioRequest{
		Nome:           "João Vereador Neto",
		Login:          "vereador",
		Senha:          "vereador123",
		ConfirmarSenha: "vereador123",
		Perfil:         entity.PerfilVereador,
	})
	require.NoError(t, err)
	assert.Equal(t, "João Vereador Neto", out.Nome)
}

func TestUsuarioCreate_ConfirmacaoDeSenhaDivergente(t *testing.T) {
	uc := novoUsuarioUseCase(t)

	_, err := uc.Create(dto.CreateUsuarioRequest{
		Nome:           "Maria Silva",
		Login:          "maria",
		Senha:          "s3nh4",
		ConfirmarSenha: "outra",
		Perfil:         entity.PerfilVereador,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ConfirmarSenha")
}
