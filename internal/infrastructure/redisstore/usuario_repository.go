package redisstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre o Store.
type UsuarioRepo struct {
	store *Store
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários.
func NewUsuarioRepository(store *Store) *UsuarioRepo {
	return &UsuarioRepo{store: store}
}

func (r *UsuarioRepo) lerTodos(ctx context.Context) ([]*entity.Usuario, error) {
	if err := r.store.semearUsuarios(ctx); err != nil {
		return nil, err
	}
	var usuarios []*entity.Usuario
	if _, err := r.store.lerColecao(ctx, chaveUsuarios, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

// List devolve todos os usuários da coleção, na ordem persistida.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	return r.lerTodos(context.Background())
}

// GetByID devolve o usuário com o id, ou nil se ausente.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	usuarios, err := r.lerTodos(context.Background())
	if err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// GetByLogin devolve o primeiro usuário com o login, ou nil se ausente.
func (r *UsuarioRepo) GetByLogin(login string) (*entity.Usuario, error) {
	usuarios, err := r.lerTodos(context.Background())
	if err != nil {
		return nil, err
	}
	for _, u := range usuarios {
		if u.Login == login {
			return u, nil
		}
	}
	return nil, nil
}

// Create atribui id (se ausente), garante unicidade do login dentro da
// coleção e regrava o array completo.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	ctx := context.Background()
	usuarios, err := r.lerTodos(ctx)
	if err != nil {
		return err
	}
	for _, existente := range usuarios {
		if existente.Login == u.Login {
			return domain.ErrLoginJaExiste
		}
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return r.store.gravarColecao(ctx, chaveUsuarios, append(usuarios, u))
}

// Update substitui o registro de mesmo id e regrava a coleção.
func (r *UsuarioRepo) Update(u *entity.Usuario) error {
	ctx := context.Background()
	usuarios, err := r.lerTodos(ctx)
	if err != nil {
		return err
	}
	achou := false
	for i, existente := range usuarios {
		if existente.Login == u.Login && existente.ID != u.ID {
			return domain.ErrLoginJaExiste
		}
		if existente.ID == u.ID {
			usuarios[i] = u
			achou = true
		}
	}
	if !achou {
		return domain.ErrUsuarioNaoEncontrado
	}
	return r.store.gravarColecao(ctx, chaveUsuarios, usuarios)
}

// Delete remove o registro de mesmo id; ausência não é erro.
func (r *UsuarioRepo) Delete(id string) error {
	ctx := context.Background()
	usuarios, err := r.lerTodos(ctx)
	if err != nil {
		return err
	}
	restantes := usuarios[:0]
	for _, u := range usuarios {
		if u.ID != id {
			restantes = append(restantes, u)
		}
	}
	return r.store.gravarColecao(ctx, chaveUsuarios, restantes)
}
