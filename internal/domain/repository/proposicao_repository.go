package repository

import "github.com/camaradigital/proposicoes-api/internal/domain/entity"

// ProposicaoRepository define o porto de persistência para Proposicao.
type ProposicaoRepository interface {
	List() ([]*entity.Proposicao, error)
	ListByAutor(autorID string) ([]*entity.Proposicao, error)
	GetByID(id string) (*entity.Proposicao, error)
	Create(p *entity.Proposicao) error
	Update(p *entity.Proposicao) error
	Delete(id string) error
	// SetStatus aplica o status pedido e marca data_envio/data_protocolo
	// quando ainda ausentes. A primitiva não valida o grafo de transições;
	// essa regra vive na camada de casos de uso.
	SetStatus(id, status string) error
}
