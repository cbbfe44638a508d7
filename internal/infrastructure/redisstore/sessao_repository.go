package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/camaradigital/proposicoes-api/internal/domain"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/internal/domain/repository"
)

var _ repository.SessaoRepository = (*SessaoRepo)(nil)

// SessaoRepo persiste a identidade ativa sob a chave "currentUser".
// No máximo uma sessão por escopo; sobrevive a reinícios do processo.
type SessaoRepo struct {
	store *Store
}

// NewSessaoRepository constrói o adaptador da sessão.
func NewSessaoRepository(store *Store) *SessaoRepo {
	return &SessaoRepo{store: store}
}

// Get devolve o usuário da sessão ativa, ou nil se não há sessão.
func (r *SessaoRepo) Get() (*entity.Usuario, error) {
	val, err := r.store.db.Get(context.Background(), chaveSessao).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: ler %s: %w", chaveSessao, err)
	}
	var u entity.Usuario
	if err := json.Unmarshal([]byte(val), &u); err != nil {
		return nil, fmt.Errorf("redisstore: %s: %w", chaveSessao, domain.ErrArmazenamentoCorrompido)
	}
	return &u, nil
}

// Set grava o usuário como sessão ativa, substituindo a anterior.
func (r *SessaoRepo) Set(u *entity.Usuario) error {
	dados, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("redisstore: serializar %s: %w", chaveSessao, err)
	}
	if err := r.store.db.Set(context.Background(), chaveSessao, dados, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: gravar %s: %w", chaveSessao, err)
	}
	return nil
}

// Clear encerra a sessão ativa; ausência não é erro.
func (r *SessaoRepo) Clear() error {
	if err := r.store.db.Del(context.Background(), chaveSessao).Err(); err != nil {
		return fmt.Errorf("redisstore: remover %s: %w", chaveSessao, err)
	}
	return nil
}
