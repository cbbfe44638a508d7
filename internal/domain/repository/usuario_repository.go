package repository

import "github.com/camaradigital/proposicoes-api/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario (DIP).
// Toda mutação substitui a coleção inteira no armazenamento subjacente.
type UsuarioRepository interface {
	List() ([]*entity.Usuario, error)
	GetByID(id string) (*entity.Usuario, error)
	GetByLogin(login string) (*entity.Usuario, error)
	Create(u *entity.Usuario) error
	Update(u *entity.Usuario) error
	Delete(id string) error
}
