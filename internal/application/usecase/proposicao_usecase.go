package usecase

import (
	"github.com/camaradigital/proposicoes-api/internal/application/dto"
	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/domain/repository"
)

// ProposicaoUseCase aplica as regras de acesso e o ciclo de vida das
// proposições:
//
//	rascunho → enviada → protocolada → arquivada
//
// O administrador geral enxerga e avança qualquer proposição; o vereador
// enxerga e edita apenas as próprias, e somente enquanto em rascunho.
type ProposicaoUseCase struct {
	repo        repository.ProposicaoRepository
	usuarioRepo repository.UsuarioRepository
}

// NewProposicaoUseCase constrói o caso de uso.
func NewProposicaoUseCase(repo repository.ProposicaoRepository, usuarioRepo repository.UsuarioRepository) *ProposicaoUseCase {
	return &ProposicaoUseCase{repo: repo, usuarioRepo: usuarioRepo}
}

// List devolve as proposições visíveis para a identidade: todas para o
// administrador, apenas as próprias para o vereador.
func (uc *ProposicaoUseCase) List(id Identidade) ([]*dto.ProposicaoResponse, error) {
	var (
		proposicoes []*entity.Proposicao
		err         error
	)
	if id.IsAdmin() {
		proposicoes, err = uc.repo.List()
	} else {
		proposicoes, err = uc.repo.ListByAutor(id.UsuarioID)
	}
	if err != nil {
		return nil, err
	}
	nomes, err := uc.nomesDosAutores()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProposicaoResponse, 0, len(proposicoes))
	for _, p := range proposicoes {
		out = append(out, toProposicaoResponse(p, nomes[p.AutorID]))
	}
	return out, nil
}

// GetByID devolve a proposição, ou nil se ausente. Vereador acessando
// proposição alheia recebe ErrAcessoNegado (a camada HTTP redireciona para a
// listagem em vez de expor erro).
func (uc *ProposicaoUseCase) GetByID(id Identidade, propID string) (*dto.ProposicaoResponse, error) {
	p, err := uc.repo.GetByID(propID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if !id.IsAdmin() && p.AutorID != id.UsuarioID {
		return nil, domain.ErrAcessoNegado
	}
	nomes, err := uc.nomesDosAutores()
	if err != nil {
		return nil, err
	}
	return toProposicaoResponse(p, nomes[p.AutorID]), nil
}

// Create persiste uma nova proposição em rascunho, com a identidade como
// autora. O anexo, quando presente, precisa ser um data URI de PDF de até 5 MB.
func (uc *ProposicaoUseCase) Create(id Identidade, in dto.CreateProposicaoRequest) (*dto.ProposicaoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Anexo != nil {
		if err := entity.ValidarAnexo(*in.Anexo); err != nil {
			return nil, err
		}
	}
	p := &entity.Proposicao{
		Tipo:        in.Tipo,
		Titulo:      in.Titulo,
		Ementa:      in.Ementa,
		AutorID:     id.UsuarioID,
		Status:      entity.StatusRascunho,
		Anexo:       in.Anexo,
		Observacoes: in.Observacoes,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProposicaoResponse(p, ""), nil
}

// Update substitui os campos editáveis. Permitido apenas enquanto a
// proposição está em rascunho, e apenas ao autor ou ao administrador.
func (uc *ProposicaoUseCase) Update(id Identidade, propID string, in dto.UpdateProposicaoRequest) (*dto.ProposicaoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(propID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if !id.IsAdmin() && p.AutorID != id.UsuarioID {
		return nil, domain.ErrAcessoNegado
	}
	if !p.Editavel() {
		return nil, domain.ErrAcessoNegado
	}
	if in.Anexo != nil {
		if err := entity.ValidarAnexo(*in.Anexo); err != nil {
			return nil, err
		}
	}
	p.Tipo = in.Tipo
	p.Titulo = in.Titulo
	p.Ementa = in.Ementa
	p.Anexo = in.Anexo
	p.Observacoes = in.Observacoes
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toProposicaoResponse(p, ""), nil
}

// Delete remove a proposição. Administrador remove qualquer uma; o vereador,
// apenas as próprias e enquanto em rascunho.
func (uc *ProposicaoUseCase) Delete(id Identidade, propID string) error {
	p, err := uc.repo.GetByID(propID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNaoEncontrado
	}
	if !id.IsAdmin() {
		if p.AutorID != id.UsuarioID || !p.Editavel() {
			return domain.ErrAcessoNegado
		}
	}
	return uc.repo.Delete(propID)
}

// Enviar executa rascunho → enviada (autor ou administrador). Marca
// data_envio uma única vez; reenviar uma proposição já enviada não altera o
// carimbo.
func (uc *ProposicaoUseCase) Enviar(id Identidade, propID string) (*dto.ProposicaoResponse, error) {
	return uc.transicionar(id, propID, entity.StatusEnviada, false)
}

// Protocolar executa enviada → protocolada (somente administrador). Marca
// data_protocolo uma única vez.
func (uc *ProposicaoUseCase) Protocolar(id Identidade, propID string) (*dto.ProposicaoResponse, error) {
	return uc.transicionar(id, propID, entity.StatusProtocolada, true)
}

// Arquivar executa protocolada → arquivada (somente administrador), estado
// terminal sem efeitos de data.
func (uc *ProposicaoUseCase) Arquivar(id Identidade, propID string) (*dto.ProposicaoResponse, error) {
	return uc.transicionar(id, propID, entity.StatusArquivada, true)
}

// transicionar concentra as regras comuns de mudança de status: existência,
// posse, exigência de administrador e validade no grafo linear. A primitiva
// SetStatus do repositório continua permissiva; o grafo é imposto aqui, para
// todos os chamadores da API.
func (uc *ProposicaoUseCase) transicionar(id Identidade, propID, alvo string, somenteAdmin bool) (*dto.ProposicaoResponse, error) {
	p, err := uc.repo.GetByID(propID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if somenteAdmin && !id.IsAdmin() {
		return nil, domain.ErrAcessoNegado
	}
	if !id.IsAdmin() && p.AutorID != id.UsuarioID {
		return nil, domain.ErrAcessoNegado
	}
	if !entity.TransicaoValida(p.Status, alvo) {
		return nil, domain.ErrTransicaoInvalida
	}
	if err := uc.repo.SetStatus(propID, alvo); err != nil {
		return nil, err
	}
	return uc.GetByID(id, propID)
}

// Anexo devolve o nome e os bytes do documento anexado, com as mesmas regras
// de visibilidade do detalhe.
func (uc *ProposicaoUseCase) Anexo(id Identidade, propID string) (nome string, dados []byte, err error) {
	p, err := uc.repo.GetByID(propID)
	if err != nil {
		return "", nil, err
	}
	if p == nil || p.Anexo == nil {
		return "", nil, domain.ErrNaoEncontrado
	}
	if !id.IsAdmin() && p.AutorID != id.UsuarioID {
		return "", nil, domain.ErrAcessoNegado
	}
	dados, err = entity.DecodificarAnexo(*p.Anexo)
	if err != nil {
		return "", nil, err
	}
	return entity.NomeDoAnexo(*p.Anexo), dados, nil
}

// Resumo devolve os contadores por status do painel, já filtrados pela
// visibilidade da identidade.
func (uc *ProposicaoUseCase) Resumo(id Identidade) (*dto.ResumoResponse, error) {
	var (
		proposicoes []*entity.Proposicao
		err         error
	)
	if id.IsAdmin() {
		proposicoes, err = uc.repo.List()
	} else {
		proposicoes, err = uc.repo.ListByAutor(id.UsuarioID)
	}
	if err != nil {
		return nil, err
	}
	resumo := &dto.ResumoResponse{Total: len(proposicoes)}
	for _, p := range proposicoes {
		switch p.Status {
		case entity.StatusRascunho:
			resumo.Rascunhos++
		case entity.StatusEnviada:
			resumo.Enviadas++
		case entity.StatusProtocolada:
			resumo.Protocoladas++
		case entity.StatusArquivada:
			resumo.Arquivadas++
		}
	}
	return resumo, nil
}

// nomesDosAutores indexa nome por id de usuário para resolver autor_nome.
func (uc *ProposicaoUseCase) nomesDosAutores() (map[string]string, error) {
	usuarios, err := uc.usuarioRepo.List()
	if err != nil {
		return nil, err
	}
	nomes := make(map[string]string, len(usuarios))
	for _, u := range usuarios {
		nomes[u.ID] = u.Nome
	}
	return nomes, nil
}

func toProposicaoResponse(p *entity.Proposicao, autorNome string) *dto.ProposicaoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProposicaoResponse{
		ID:            p.ID,
		Tipo:          p.Tipo,
		Titulo:        p.Titulo,
		Ementa:        p.Ementa,
		AutorID:       p.AutorID,
		AutorNome:     autorNome,
		Status:        p.Status,
		DataEnvio:     p.DataEnvio,
		DataProtocolo: p.DataProtocolo,
		Anexo:         p.Anexo,
		Observacoes:   p.Observacoes,
	}
}
