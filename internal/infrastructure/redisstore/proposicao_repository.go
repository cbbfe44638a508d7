package redisstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/domain/repository"
)

var _ repository.ProposicaoRepository = (*ProposicaoRepo)(nil)

// ProposicaoRepo implementação do porto ProposicaoRepository sobre o Store.
type ProposicaoRepo struct {
	store *Store
}

// NewProposicaoRepository constrói o adaptador de persistência de proposições.
func NewProposicaoRepository(store *Store) *ProposicaoRepo {
	return &ProposicaoRepo{store: store}
}

func (r *ProposicaoRepo) lerTodas(ctx context.Context) ([]*entity.Proposicao, error) {
	if err := r.store.semearProposicoes(ctx); err != nil {
		return nil, err
	}
	var proposicoes []*entity.Proposicao
	if _, err := r.store.lerColecao(ctx, chaveProposicoes, &proposicoes); err != nil {
		return nil, err
	}
	return proposicoes, nil
}

// List devolve todas as proposições na ordem persistida.
func (r *ProposicaoRepo) List() ([]*entity.Proposicao, error) {
	return r.lerTodas(context.Background())
}

// ListByAutor devolve apenas as proposições do autor indicado.
func (r *ProposicaoRepo) ListByAutor(autorID string) ([]*entity.Proposicao, error) {
	todas, err := r.lerTodas(context.Background())
	if err != nil {
		return nil, err
	}
	var proprias []*entity.Proposicao
	for _, p := range todas {
		if p.AutorID == autorID {
			proprias = append(proprias, p)
		}
	}
	return proprias, nil
}

// GetByID devolve a proposição com o id, ou nil se ausente.
func (r *ProposicaoRepo) GetByID(id string) (*entity.Proposicao, error) {
	todas, err := r.lerTodas(context.Background())
	if err != nil {
		return nil, err
	}
	for _, p := range todas {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create atribui id (se ausente) e regrava a coleção completa.
func (r *ProposicaoRepo) Create(p *entity.Proposicao) error {
	ctx := context.Background()
	todas, err := r.lerTodas(ctx)
	if err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return r.store.gravarColecao(ctx, chaveProposicoes, append(todas, p))
}

// Update substitui o registro de mesmo id e regrava a coleção.
func (r *ProposicaoRepo) Update(p *entity.Proposicao) error {
	ctx := context.Background()
	todas, err := r.lerTodas(ctx)
	if err != nil {
		return err
	}
	achou := false
	for i, existente := range todas {
		if existente.ID == p.ID {
			todas[i] = p
			achou = true
			break
		}
	}
	if !achou {
		return domain.ErrNaoEncontrado
	}
	return r.store.gravarColecao(ctx, chaveProposicoes, todas)
}

// Delete remove o registro de mesmo id; ausência não é erro.
func (r *ProposicaoRepo) Delete(id string) error {
	ctx := context.Background()
	todas, err := r.lerTodas(ctx)
	if err != nil {
		return err
	}
	restantes := todas[:0]
	for _, p := range todas {
		if p.ID != id {
			restantes = append(restantes, p)
		}
	}
	return r.store.gravarColecao(ctx, chaveProposicoes, restantes)
}

// SetStatus aplica o status pedido e marca os carimbos de data associados
// quando ainda ausentes: data_envio ao virar "enviada", data_protocolo ao
// virar "protocolada". Carimbo já preenchido nunca é sobrescrito nem limpo,
// o que torna a reaplicação da mesma transição idempotente.
func (r *ProposicaoRepo) SetStatus(id, status string) error {
	ctx := context.Background()
	todas, err := r.lerTodas(ctx)
	if err != nil {
		return err
	}
	achou := false
	for _, p := range todas {
		if p.ID != id {
			continue
		}
		achou = true
		p.Status = status
		if status == entity.StatusEnviada && p.DataEnvio == nil {
			envio := agoraISO()
			p.DataEnvio = &envio
		}
		if status == entity.StatusProtocolada && p.DataProtocolo == nil {
			protocolo := agoraISO()
			p.DataProtocolo = &protocolo
		}
	}
	if !achou {
		return domain.ErrNaoEncontrado
	}
	return r.store.gravarColecao(ctx, chaveProposicoes, todas)
}
