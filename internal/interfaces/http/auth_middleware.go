package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/camaradigital/proposicoes-api/internal/application/dto"
	"github.com/camaradigital/proposicoes-api/internal/application/usecase"
	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
	"github.com/camaradigital/proposicoes-api/pkg/jwt"
)

// Locals keys para UsuarioID e Perfil no Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalPerfil    = "perfil"
)

// RotaPadrao é a visão segura para onde acessos negados são redirecionados,
// em vez de devolver erro.
const RotaPadrao = "/api/proposicoes"

// AuthMiddleware valida o Bearer Token JWT e grava UsuarioID e Perfil em
// c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		usuarioID, perfil, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalPerfil, perfil)
		return c.Next()
	}
}

// SomenteAdmin restringe a rota ao administrador geral. Qualquer outro perfil
// é redirecionado para a listagem de proposições; o vereador nunca vê as
// rotas de usuários. Deve ser usado DEPOIS de AuthMiddleware.
func SomenteAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		perfil := GetPerfil(c)
		if perfil == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_PERFIL", Message: "perfil não encontrado no token"})
		}
		if perfil != entity.PerfilAdminGeral {
			return c.Redirect(RotaPadrao, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// GetUsuarioID devolve o UsuarioID do contexto (depois do middleware de auth).
func GetUsuarioID(c *fiber.Ctx) string {
	v := c.Locals(LocalUsuarioID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetPerfil devolve o Perfil do contexto (depois do middleware de auth).
func GetPerfil(c *fiber.Ctx) string {
	v := c.Locals(LocalPerfil)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// identidade monta a Identidade dos casos de uso a partir do contexto.
func identidade(c *fiber.Ctx) usecase.Identidade {
	return usecase.Identidade{UsuarioID: GetUsuarioID(c), Perfil: GetPerfil(c)}
}
