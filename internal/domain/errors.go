package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado = errors.New("recurso não encontrado")

	// ErrUsuarioNaoEncontrado especializa ErrNaoEncontrado para a gestão de
	// usuários; errors.Is casa com ambos.
	ErrUsuarioNaoEncontrado = fmt.Errorf("usuário não encontrado: %w", ErrNaoEncontrado)

	ErrLoginJaExiste           = errors.New("o login já está em uso")
	ErrCredenciaisInvalidas    = errors.New("credenciais inválidas")
	ErrEntradaInvalida         = errors.New("entrada inválida")
	ErrAcessoNegado            = errors.New("acesso negado")
	ErrTransicaoInvalida       = errors.New("transição de status inválida")
	ErrArmazenamentoCorrompido = errors.New("dados persistidos corrompidos")
)
