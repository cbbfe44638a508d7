package usecase

import (
	"fmt"

	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/domain/repository"
)

// ComprovanteDados reúne tudo que o gerador de PDF precisa, já resolvido
// (nome do autor, rótulo do status). Datas em ISO 8601.
type ComprovanteDados struct {
	ID            string
	Tipo          string
	Titulo        string
	AutorNome     string
	StatusLabel   string
	DataEnvio     *string
	DataProtocolo *string
	Ementa        string
}

// ComprovantePDFGenerator é o porto de geração do comprovante de protocolo.
type ComprovantePDFGenerator interface {
	GerarComprovante(dados ComprovanteDados) ([]byte, error)
}

// ComprovanteUseCase gera o comprovante de protocolo de uma proposição.
// O comprovante só existe para proposições protocoladas.
type ComprovanteUseCase struct {
	repo        repository.ProposicaoRepository
	usuarioRepo repository.UsuarioRepository
	generator   ComprovantePDFGenerator
}

// NewComprovanteUseCase constrói o caso de uso injetando suas dependências.
func NewComprovanteUseCase(repo repository.ProposicaoRepository, usuarioRepo repository.UsuarioRepository, generator ComprovantePDFGenerator) *ComprovanteUseCase {
	return &ComprovanteUseCase{repo: repo, usuarioRepo: usuarioRepo, generator: generator}
}

// Download carrega a proposição, verifica visibilidade e estado, e gera o PDF.
//
// Retorna:
//   - (pdf, nomeDoArquivo, nil)    no sucesso.
//   - domain.ErrNaoEncontrado      se a proposição não existe.
//   - domain.ErrAcessoNegado       se a identidade não pode vê-la.
//   - domain.ErrEntradaInvalida    se ainda não está protocolada.
func (uc *ComprovanteUseCase) Download(id Identidade, propID string) (pdf []byte, nome string, err error) {
	p, err := uc.repo.GetByID(propID)
	if err != nil {
		return nil, "", fmt.Errorf("comprovante: obter proposição: %w", err)
	}
	if p == nil {
		return nil, "", domain.ErrNaoEncontrado
	}
	if !id.IsAdmin() && p.AutorID != id.UsuarioID {
		return nil, "", domain.ErrAcessoNegado
	}
	if p.Status != entity.StatusProtocolada {
		return nil, "", domain.ErrEntradaInvalida
	}

	autor, err := uc.usuarioRepo.GetByID(p.AutorID)
	if err != nil {
		return nil, "", fmt.Errorf("comprovante: obter autor: %w", err)
	}
	// Autor excluído não bloqueia o comprovante: o campo sai em branco.
	autorNome := ""
	if autor != nil {
		autorNome = autor.Nome
	}

	pdf, err = uc.generator.GerarComprovante(ComprovanteDados{
		ID:            p.ID,
		Tipo:          p.Tipo,
		Titulo:        p.Titulo,
		AutorNome:     autorNome,
		StatusLabel:   entity.StatusLabel(p.Status),
		DataEnvio:     p.DataEnvio,
		DataProtocolo: p.DataProtocolo,
		Ementa:        p.Ementa,
	})
	if err != nil {
		return nil, "", fmt.Errorf("comprovante: gerar pdf: %w", err)
	}
	return pdf, fmt.Sprintf("comprovante_proposicao_%s.pdf", p.ID), nil
}
