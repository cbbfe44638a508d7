package entity

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"

	"github.com/camaradigital/proposicoes-api/internal/domain"
)

// Anexos são transportados como data URI: "data:application/pdf;name=x.pdf;base64,<payload>".
// O payload fica depois da primeira vírgula; o nome original do arquivo viaja
// no parâmetro opcional "name=".

const (
	// AnexoNomePadrao é usado quando o data URI não declara nome de arquivo.
	AnexoNomePadrao = "documento.pdf"

	// AnexoTamanhoMax limita o anexo decodificado a 5 MB.
	AnexoTamanhoMax = 5 * 1024 * 1024

	anexoMediaType = "application/pdf"
)

var anexoNomeRe = regexp.MustCompile(`name=([^;,]+)`)

// NomeDoAnexo extrai o nome do arquivo do parâmetro "name=" do data URI.
// Sem parâmetro (ou com valor ilegível) devolve AnexoNomePadrao.
func NomeDoAnexo(anexo string) string {
	m := anexoNomeRe.FindStringSubmatch(anexo)
	if m == nil {
		return AnexoNomePadrao
	}
	nome, err := url.QueryUnescape(m[1])
	if err != nil || nome == "" {
		return AnexoNomePadrao
	}
	return nome
}

// DecodificarAnexo devolve os bytes do documento: tudo depois da primeira
// vírgula, decodificado de base64.
func DecodificarAnexo(anexo string) ([]byte, error) {
	_, payload, ok := strings.Cut(anexo, ",")
	if !ok {
		return nil, domain.ErrEntradaInvalida
	}
	dados, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	return dados, nil
}

// ValidarAnexo verifica o tipo declarado (somente PDF) e o tamanho decodificado.
func ValidarAnexo(anexo string) error {
	if !strings.HasPrefix(anexo, "data:"+anexoMediaType) {
		return domain.ErrEntradaInvalida
	}
	dados, err := DecodificarAnexo(anexo)
	if err != nil {
		return err
	}
	if len(dados) > AnexoTamanhoMax {
		return domain.ErrEntradaInvalida
	}
	return nil
}
