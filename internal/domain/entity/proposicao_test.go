package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
)

// O ciclo de vida é estritamente linear: nenhuma transição volta atrás e
// nenhum estado pode ser pulado.
func TestTransicaoValida_OrdemLinear(t *testing.T) {
	casos := []struct {
		atual, novo string
		ok          bool
	}{
		{entity.StatusRascunho, entity.StatusEnviada, true},
		{entity.StatusEnviada, entity.StatusProtocolada, true},
		{entity.StatusProtocolada, entity.StatusArquivada, true},

		// pulos
		{entity.StatusRascunho, entity.StatusProtocolada, false},
		{entity.StatusRascunho, entity.StatusArquivada, false},
		{entity.StatusEnviada, entity.StatusArquivada, false},

		// retrocessos
		{entity.StatusEnviada, entity.StatusRascunho, false},
		{entity.StatusProtocolada, entity.StatusEnviada, false},
		{entity.StatusArquivada, entity.StatusProtocolada, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.ok, entity.TransicaoValida(c.atual, c.novo),
			"%s -> %s", c.atual, c.novo)
	}
}

// Repetir o status atual é idempotente, inclusive no estado terminal.
func TestTransicaoValida_RepetirStatusEhValido(t *testing.T) {
	for _, s := range []string{
		entity.StatusRascunho,
		entity.StatusEnviada,
		entity.StatusProtocolada,
		entity.StatusArquivada,
	} {
		assert.True(t, entity.TransicaoValida(s, s), "repetir %s deve ser válido", s)
	}
}

func TestEditavel_SomenteEmRascunho(t *testing.T) {
	p := &entity.Proposicao{Status: entity.StatusRascunho}
	assert.True(t, p.Editavel())

	for _, s := range []string{entity.StatusEnviada, entity.StatusProtocolada, entity.StatusArquivada} {
		p.Status = s
		assert.False(t, p.Editavel(), "status %s não deve ser editável", s)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Rascunho", entity.StatusLabel(entity.StatusRascunho))
	assert.Equal(t, "Enviada", entity.StatusLabel(entity.StatusEnviada))
	assert.Equal(t, "Protocolada", entity.StatusLabel(entity.StatusProtocolada))
	assert.Equal(t, "Arquivada", entity.StatusLabel(entity.StatusArquivada))
	// valor desconhecido passa adiante sem tradução
	assert.Equal(t, "outro", entity.StatusLabel("outro"))
}

func TestPerfilValido(t *testing.T) {
	assert.True(t, entity.PerfilValido(entity.PerfilAdminGeral))
	assert.True(t, entity.PerfilValido(entity.PerfilVereador))
	assert.False(t, entity.PerfilValido("prefeito"))
	assert.False(t, entity.PerfilValido(""))
}
