package repository

import "github.com/camaradigital/proposicoes-api/internal/domain/entity"

// SessaoRepository materializa a identidade ativa do escopo de armazenamento
// (no máximo uma por escopo, chave "currentUser").
type SessaoRepository interface {
	// Get devolve o usuário da sessão ativa, ou nil se não há sessão.
	Get() (*entity.Usuario, error)
	Set(u *entity.Usuario) error
	Clear() error
}
