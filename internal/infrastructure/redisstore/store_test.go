package redisstore_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/infrastructure/redisstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// novoStore sobe um miniredis isolado por teste e monta o Store sobre ele.
func novoStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisstore.NewFromClient(client), mr
}

// ──────────────────────────────────────────────────────────────────────────────
// Semeadura preguiçosa
// ──────────────────────────────────────────────────────────────────────────────

// Armazenamento vazio: o primeiro acesso semeia exatamente dois usuários
// (admin e vereador) e duas proposições (enviada e protocolada).
func TestSemente_PrimeiroAcesso(t *testing.T) {
	store, _ := novoStore(t)

	usuarios, err := redisstore.NewUsuarioRepository(store).List()
	require.NoError(t, err)
	require.Len(t, usuarios, 2)
	assert.Equal(t, "admin", usuarios[0].Login)
	assert.Equal(t, entity.PerfilAdminGeral, usuarios[0].Perfil)
	assert.Equal(t, "vereador", usuarios[1].Login)
	assert.Equal(t, entity.PerfilVereador, usuarios[1].Perfil)

	proposicoes, err := redisstore.NewProposicaoRepository(store).List()
	require.NoError(t, err)
	require.Len(t, proposicoes, 2)
	assert.Equal(t, entity.StatusEnviada, proposicoes[0].Status)
	assert.NotNil(t, proposicoes[0].DataEnvio)
	assert.Equal(t, entity.StatusProtocolada, proposicoes[1].Status)
	assert.NotNil(t, proposicoes[1].DataProtocolo)
}

// Coleção esvaziada por exclusões não é ressemeada: a chave continua
// existindo com o array vazio.
func TestSemente_NaoRessemeiaColecaoVazia(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewUsuarioRepository(store)

	usuarios, err := repo.List()
	require.NoError(t, err)
	for _, u := range usuarios {
		require.NoError(t, repo.Delete(u.ID))
	}

	usuarios, err = repo.List()
	require.NoError(t, err)
	assert.Empty(t, usuarios, "coleção esvaziada não deve voltar a ter a semente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Corrupção de dados
// ──────────────────────────────────────────────────────────────────────────────

// JSON ilegível sob a chave é erro fatal de leitura, nunca tratado como
// coleção ausente.
func TestLeitura_DadosCorrompidos(t *testing.T) {
	store, mr := novoStore(t)
	require.NoError(t, mr.Set("usuarios", "{isto não é um array"))

	_, err := redisstore.NewUsuarioRepository(store).List()
	assert.ErrorIs(t, err, domain.ErrArmazenamentoCorrompido)

	require.NoError(t, mr.Set("proposicoes", "42"))
	_, err = redisstore.NewProposicaoRepository(store).List()
	assert.ErrorIs(t, err, domain.ErrArmazenamentoCorrompido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuários
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuario_CreateAtribuiIDELoginUnico(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewUsuarioRepository(store)

	u := &entity.Usuario{Nome: "Maria Silva", Login: "maria", Senha: "s3nh4", Perfil: entity.PerfilVereador}
	require.NoError(t, repo.Create(u))
	assert.NotEmpty(t, u.ID, "o store deve atribuir o id")

	lido, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	require.NotNil(t, lido)
	assert.Equal(t, "Maria Silva", lido.Nome)

	// login duplicado é rejeitado na escrita
	dup := &entity.Usuario{Nome: "Outra Maria", Login: "maria", Senha: "x", Perfil: entity.PerfilVereador}
	assert.ErrorIs(t, repo.Create(dup), domain.ErrLoginJaExiste)
}

func TestUsuario_GetByLogin(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewUsuarioRepository(store)

	u, err := repo.GetByLogin("vereador")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "2", u.ID)

	ausente, err := repo.GetByLogin("ninguem")
	require.NoError(t, err)
	assert.Nil(t, ausente)
}

func TestUsuario_DeleteNaoAfetaOsDemais(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewUsuarioRepository(store)

	usuarios, err := repo.List()
	require.NoError(t, err)
	require.Len(t, usuarios, 2)

	require.NoError(t, repo.Delete("1"))

	removido, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Nil(t, removido)

	restantes, err := repo.List()
	require.NoError(t, err)
	require.Len(t, restantes, 1)
	assert.Equal(t, "2", restantes[0].ID)
	assert.Equal(t, "vereador", restantes[0].Login)
}

func TestUsuario_UpdateSubstituiPorID(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewUsuarioRepository(store)

	_, err := repo.List() // força a semente
	require.NoError(t, err)

	atualizado := &entity.Usuario{ID: "2", Nome: "João Vereador Filho", Login: "vereador", Senha: "nova", Perfil: entity.PerfilVereador}
	require.NoError(t, repo.Update(atualizado))

	lido, err := repo.GetByID("2")
	require.NoError(t, err)
	require.NotNil(t, lido)
	assert.Equal(t, "João Vereador Filho", lido.Nome)
	assert.Equal(t, "nova", lido.Senha)

	// id inexistente
	err = repo.Update(&entity.Usuario{ID: "999", Login: "ninguem"})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Proposições
// ──────────────────────────────────────────────────────────────────────────────

func TestProposicao_RoundTrip(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewProposicaoRepository(store)

	p := &entity.Proposicao{
		Tipo:        "Indicação",
		Titulo:      "Iluminação do Parque Municipal",
		Ementa:      "Indica a instalação de iluminação de LED no parque municipal",
		AutorID:     "2",
		Status:      entity.StatusRascunho,
		Observacoes: "",
	}
	require.NoError(t, repo.Create(p))
	require.NotEmpty(t, p.ID)

	lida, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, lida)
	assert.Equal(t, p.Titulo, lida.Titulo)
	assert.Equal(t, entity.StatusRascunho, lida.Status)
	assert.Nil(t, lida.DataEnvio, "rascunho recém-criado não tem data de envio")
	assert.Nil(t, lida.DataProtocolo)
}

func TestProposicao_ListByAutorFiltra(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewProposicaoRepository(store)

	// a semente tem duas proposições do autor "2"; acrescenta uma de outro autor
	require.NoError(t, repo.Create(&entity.Proposicao{
		Tipo: "Moção", Titulo: "Moção de Aplauso", Ementa: "e", AutorID: "7", Status: entity.StatusRascunho,
	}))

	proprias, err := repo.ListByAutor("2")
	require.NoError(t, err)
	require.Len(t, proprias, 2)
	for _, p := range proprias {
		assert.Equal(t, "2", p.AutorID)
	}

	outras, err := repo.ListByAutor("7")
	require.NoError(t, err)
	assert.Len(t, outras, 1)
}

// Enviar marca data_envio uma única vez; repetir a transição não sobrescreve
// o carimbo.
func TestProposicao_SetStatusIdempotente(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewProposicaoRepository(store)

	p := &entity.Proposicao{Tipo: "Projeto de Lei", Titulo: "t", Ementa: "e", AutorID: "2", Status: entity.StatusRascunho}
	require.NoError(t, repo.Create(p))

	require.NoError(t, repo.SetStatus(p.ID, entity.StatusEnviada))
	depois, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	require.NotNil(t, depois.DataEnvio)
	primeira := *depois.DataEnvio

	require.NoError(t, repo.SetStatus(p.ID, entity.StatusEnviada))
	denovo, err := repo.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, primeira, *denovo.DataEnvio, "o carimbo não deve ser sobrescrito")
	assert.Equal(t, entity.StatusEnviada, denovo.Status)
}

func TestProposicao_SetStatusInexistente(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewProposicaoRepository(store)

	err := repo.SetStatus("nao-existe", entity.StatusEnviada)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sessão
// ──────────────────────────────────────────────────────────────────────────────

func TestSessao_SetGetClear(t *testing.T) {
	store, _ := novoStore(t)
	repo := redisstore.NewSessaoRepository(store)

	// sem sessão ativa
	u, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, repo.Set(&entity.Usuario{ID: "1", Nome: "Administrador Geral", Login: "admin", Perfil: entity.PerfilAdminGeral}))

	u, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Login)

	require.NoError(t, repo.Clear())
	u, err = repo.Get()
	require.NoError(t, err)
	assert.Nil(t, u)
}
