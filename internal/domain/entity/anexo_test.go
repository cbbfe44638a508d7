package entity_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
)

func anexoPDF(nome, conteudo string) string {
	payload := base64.StdEncoding.EncodeToString([]byte(conteudo))
	if nome == "" {
		return "data:application/pdf;base64," + payload
	}
	return "data:application/pdf;name=" + nome + ";base64," + payload
}

func TestNomeDoAnexo(t *testing.T) {
	assert.Equal(t, "oficio.pdf", entity.NomeDoAnexo(anexoPDF("oficio.pdf", "x")))

	// sem parâmetro name= cai no nome padrão
	assert.Equal(t, entity.AnexoNomePadrao, entity.NomeDoAnexo(anexoPDF("", "x")))

	// nome com URL encoding é decodificado
	assert.Equal(t, "ofício 1.pdf", entity.NomeDoAnexo(anexoPDF("of%C3%ADcio%201.pdf", "x")))
}

func TestDecodificarAnexo(t *testing.T) {
	dados, err := entity.DecodificarAnexo(anexoPDF("doc.pdf", "%PDF-1.4 conteúdo"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 conteúdo"), dados)
}

func TestDecodificarAnexo_SemVirgula(t *testing.T) {
	_, err := entity.DecodificarAnexo("data:application/pdf;base64")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestDecodificarAnexo_Base64Invalido(t *testing.T) {
	_, err := entity.DecodificarAnexo("data:application/pdf;base64,n@o-é-base64!!!")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestValidarAnexo(t *testing.T) {
	assert.NoError(t, entity.ValidarAnexo(anexoPDF("doc.pdf", "%PDF-1.4")))
}

func TestValidarAnexo_TipoErrado(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("texto"))
	err := entity.ValidarAnexo("data:text/plain;base64," + payload)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestValidarAnexo_MaiorQueOLimite(t *testing.T) {
	grande := strings.Repeat("a", entity.AnexoTamanhoMax+1)
	err := entity.ValidarAnexo(anexoPDF("grande.pdf", grande))
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
