// Package redisstore implementa a persistência do sistema sobre Redis.
//
// Cada coleção é UM array JSON gravado inteiro sob uma única chave
// ("usuarios", "proposicoes") e a sessão ativa é um objeto JSON sob
// "currentUser". Toda mutação lê a coleção completa, aplica a mudança e
// regrava o array; não existe primitiva de atualização por registro.
// Entre escopos concorrentes vale last-writer-wins;
// dentro do mesmo escopo a leitura seguinte sempre observa a escrita anterior.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/camaradigital/proposicoes-api/internal/domain"
)

// Chaves do escopo de armazenamento.
const (
	chaveUsuarios    = "usuarios"
	chaveProposicoes = "proposicoes"
	chaveSessao      = "currentUser"
)

// Config parâmetros de conexão com o Redis.
type Config struct {
	Addr     string
	Password string
	DB       int // um banco lógico = um escopo de armazenamento
}

// Store encapsula o cliente Redis e a semeadura preguiçosa das coleções.
type Store struct {
	db *redis.Client
}

// New conecta ao Redis e valida a conexão com PING.
func New(ctx context.Context, cfg Config) (*Store, error) {
	db := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redisstore: ping: %w", err)
	}
	return &Store{db: db}, nil
}

// NewFromClient monta o Store sobre um cliente já conectado (testes).
func NewFromClient(db *redis.Client) *Store {
	return &Store{db: db}
}

// Close encerra a conexão.
func (s *Store) Close() error {
	return s.db.Close()
}

// lerColecao decodifica o array JSON da chave em dest.
// Chave ausente deixa dest intocado e devolve false. JSON ilegível é erro
// fatal de leitura (ErrArmazenamentoCorrompido): nunca tratar como ausente
// nem ressemear por cima.
func (s *Store) lerColecao(ctx context.Context, chave string, dest any) (bool, error) {
	val, err := s.db.Get(ctx, chave).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redisstore: ler %s: %w", chave, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("redisstore: %s: %w", chave, domain.ErrArmazenamentoCorrompido)
	}
	return true, nil
}

// gravarColecao regrava a coleção inteira sob a chave.
func (s *Store) gravarColecao(ctx context.Context, chave string, valor any) error {
	dados, err := json.Marshal(valor)
	if err != nil {
		return fmt.Errorf("redisstore: serializar %s: %w", chave, err)
	}
	if err := s.db.Set(ctx, chave, dados, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: gravar %s: %w", chave, err)
	}
	return nil
}

// agoraISO devolve o instante atual no formato persistido (ISO 8601 UTC).
func agoraISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
