package auth

import (
	"github.com/camaradigital/proposicoes-api/internal/application/dto"
	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/domain/repository"
	"github.com/camaradigital/proposicoes-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login, logout e sessão ativa.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	sessaoRepo  repository.SessaoRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, sessaoRepo repository.SessaoRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, sessaoRepo: sessaoRepo, jwtCfg: jwtCfg}
}

// Login percorre a coleção de usuários buscando correspondência exata de
// login E senha (comparação sensível a maiúsculas, em texto plano, tal como
// os registros são persistidos). Qualquer falha de credencial devolve o mesmo
// ErrCredenciaisInvalidas, sem distinguir login inexistente de senha errada.
// No sucesso, materializa a sessão ("currentUser") e emite o JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuarios, err := uc.usuarioRepo.List()
	if err != nil {
		return nil, err
	}
	var autenticado *entity.Usuario
	for _, u := range usuarios {
		if u.Login == in.Login && u.Senha == in.Senha {
			autenticado = u
			break
		}
	}
	if autenticado == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if err := uc.sessaoRepo.Set(autenticado); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, autenticado.ID, autenticado.Perfil, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(autenticado),
	}, nil
}

// Logout encerra a sessão ativa do escopo.
func (uc *AuthUseCase) Logout() error {
	return uc.sessaoRepo.Clear()
}

// Current devolve o usuário da sessão ativa, ou nil se não há sessão.
func (uc *AuthUseCase) Current() (*dto.UsuarioResponse, error) {
	u, err := uc.sessaoRepo.Get()
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return toUsuarioResponse(u), nil
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
