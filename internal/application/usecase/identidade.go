package usecase

import "github.com/camaradigital/proposicoes-api/internal/domain/entity"

// Identidade é o contexto de quem executa a operação, extraído do token pela
// camada HTTP e passado explicitamente aos casos de uso (nada de estado
// global de sessão).
type Identidade struct {
	UsuarioID string
	Perfil    string
}

// IsAdmin informa se a identidade tem perfil de administrador geral.
func (i Identidade) IsAdmin() bool {
	return i.Perfil == entity.PerfilAdminGeral
}
