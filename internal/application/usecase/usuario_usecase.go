package usecase

import (
	"github.com/camaradigital/proposicoes-api/internal/application/dto"
	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/domain/repository"
)

// UsuarioUseCase aplica as regras de negócio de usuários. O acesso a estas
// operações é restrito ao administrador geral na camada HTTP.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso com o porto de persistência.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List devolve todos os usuários.
func (uc *UsuarioUseCase) List() ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// GetByID devolve um usuário por id, ou nil se ausente.
func (uc *UsuarioUseCase) GetByID(id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuarioResponse(u), nil
}

// Create valida a entrada e persiste um novo usuário. A unicidade do login é
// verificada aqui e reverificada dentro do repositório no momento da escrita
// (ErrLoginJaExiste).
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existente, err := uc.repo.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrLoginJaExiste
	}
	u := &entity.Usuario{
		Nome:   in.Nome,
		Login:  in.Login,
		Senha:  in.Senha,
		Perfil: in.Perfil,
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Update substitui os campos do usuário de mesmo id. O id é imutável.
func (uc *UsuarioUseCase) Update(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	atual, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	// outro usuário já usa o login pretendido
	colidente, err := uc.repo.GetByLogin(in.Login)
	if err != nil {
		return nil, err
	}
	if colidente != nil && colidente.ID != id {
		return nil, domain.ErrLoginJaExiste
	}
	u := &entity.Usuario{
		ID:     id,
		Nome:   in.Nome,
		Login:  in.Login,
		Senha:  in.Senha,
		Perfil: in.Perfil,
	}
	if err := uc.repo.Update(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Delete remove o usuário por id.
func (uc *UsuarioUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:     u.ID,
		Nome:   u.Nome,
		Login:  u.Login,
		Perfil: u.Perfil,
	}
}
