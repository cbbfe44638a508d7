package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camaradigital/proposicoes-api/internal/application/auth"
	"github.com/camaradigital/proposicoes-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	ProposicaoUC  *usecase.ProposicaoUseCase
	ComprovanteUC *usecase.ComprovanteUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; logout/me exigem token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuários: somente administrador geral; vereador é redirecionado
	usuarios := protected.Group("/usuarios", SomenteAdmin())
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Put("/:id", usuarioHandler.Update)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Proposições: visibilidade por perfil decidida nos casos de uso
	proposicoes := protected.Group("/proposicoes")
	proposicaoHandler := NewProposicaoHandler(deps.ProposicaoUC, deps.ComprovanteUC)
	proposicoes.Get("/", proposicaoHandler.List)
	proposicoes.Post("/", proposicaoHandler.Create)
	proposicoes.Get("/resumo", proposicaoHandler.Resumo)
	proposicoes.Get("/:id", proposicaoHandler.GetByID)
	proposicoes.Put("/:id", proposicaoHandler.Update)
	proposicoes.Delete("/:id", proposicaoHandler.Delete)
	proposicoes.Post("/:id/enviar", proposicaoHandler.Enviar)
	proposicoes.Post("/:id/protocolar", proposicaoHandler.Protocolar)
	proposicoes.Post("/:id/arquivar", proposicaoHandler.Arquivar)
	proposicoes.Get("/:id/anexo", proposicaoHandler.Anexo)
	proposicoes.Get("/:id/comprovante", proposicaoHandler.Comprovante)
}
