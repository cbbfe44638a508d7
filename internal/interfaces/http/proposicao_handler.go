package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/camaradigital/proposicoes-api/internal/application/dto"
	"github.com/camaradigital/proposicoes-api/internal/application/usecase"
	"github.com/camaradigital/proposicoes-api/internal/domain"
)

// ProposicaoHandler trata as rotas de proposições. Visibilidade e ciclo de
// vida são decididos nos casos de uso; aqui só se traduz erro em status HTTP.
// Exceção: acesso negado a uma visão (detalhe, anexo, comprovante) vira
// redirect 303 para a listagem, nunca erro.
type ProposicaoHandler struct {
	uc            *usecase.ProposicaoUseCase
	comprovanteUC *usecase.ComprovanteUseCase
}

// NewProposicaoHandler constrói o handler.
func NewProposicaoHandler(uc *usecase.ProposicaoUseCase, comprovanteUC *usecase.ComprovanteUseCase) *ProposicaoHandler {
	return &ProposicaoHandler{uc: uc, comprovanteUC: comprovanteUC}
}

// List godoc
// @Summary      Listar proposições visíveis para a identidade
// @Tags         proposicoes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProposicaoResponse
// @Router       /api/proposicoes [get]
func (h *ProposicaoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(identidade(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Resumo godoc
// @Summary      Contadores por status (painel)
// @Tags         proposicoes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumoResponse
// @Router       /api/proposicoes/resumo [get]
func (h *ProposicaoHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo(identidade(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalhe de uma proposição
// @Tags         proposicoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da proposição"
// @Success      200  {object}  dto.ProposicaoResponse
// @Failure      303  "sem permissão; redireciona para a listagem"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id} [get]
func (h *ProposicaoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(identidade(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAcessoNegado) {
			return c.Redirect(RotaPadrao, fiber.StatusSeeOther)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proposição não encontrada"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar proposição (nasce em rascunho, autoria da identidade)
// @Tags         proposicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProposicaoRequest  true  "Dados da proposição"
// @Success      201   {object}  dto.ProposicaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proposicoes [post]
func (h *ProposicaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProposicaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(identidade(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anexo inválido: apenas PDF de até 5 MB"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar proposição (apenas em rascunho)
// @Tags         proposicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID da proposição"
// @Param        body  body  dto.UpdateProposicaoRequest  true  "Dados da proposição"
// @Success      200   {object}  dto.ProposicaoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id} [put]
func (h *ProposicaoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProposicaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(identidade(c), c.Params("id"), in)
	if err != nil {
		return h.mapearErro(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover proposição
// @Tags         proposicoes
// @Security     Bearer
// @Param        id  path  string  true  "ID da proposição"
// @Success      204  "proposição removida"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id} [delete]
func (h *ProposicaoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(identidade(c), c.Params("id")); err != nil {
		return h.mapearErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Enviar godoc
// @Summary      Enviar proposição (rascunho → enviada)
// @Tags         proposicoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da proposição"
// @Success      200  {object}  dto.ProposicaoResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id}/enviar [post]
func (h *ProposicaoHandler) Enviar(c *fiber.Ctx) error {
	out, err := h.uc.Enviar(identidade(c), c.Params("id"))
	if err != nil {
		return h.mapearErro(c, err)
	}
	return c.JSON(out)
}

// Protocolar godoc
// @Summary      Protocolar proposição (enviada → protocolada, admin)
// @Tags         proposicoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da proposição"
// @Success      200  {object}  dto.ProposicaoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id}/protocolar [post]
func (h *ProposicaoHandler) Protocolar(c *fiber.Ctx) error {
	out, err := h.uc.Protocolar(identidade(c), c.Params("id"))
	if err != nil {
		return h.mapearErro(c, err)
	}
	return c.JSON(out)
}

// Arquivar godoc
// @Summary      Arquivar proposição (protocolada → arquivada, admin)
// @Tags         proposicoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da proposição"
// @Success      200  {object}  dto.ProposicaoResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id}/arquivar [post]
func (h *ProposicaoHandler) Arquivar(c *fiber.Ctx) error {
	out, err := h.uc.Arquivar(identidade(c), c.Params("id"))
	if err != nil {
		return h.mapearErro(c, err)
	}
	return c.JSON(out)
}

// Anexo godoc
// @Summary      Baixar o documento anexado
// @Tags         proposicoes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da proposição"
// @Success      200  "bytes do documento"
// @Failure      303  "sem permissão; redireciona para a listagem"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id}/anexo [get]
func (h *ProposicaoHandler) Anexo(c *fiber.Ctx) error {
	nome, dados, err := h.uc.Anexo(identidade(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAcessoNegado):
			return c.Redirect(RotaPadrao, fiber.StatusSeeOther)
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "anexo não encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(dados)
}

// Comprovante godoc
// @Summary      Gerar o comprovante de protocolo em PDF
// @Tags         proposicoes
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da proposição"
// @Success      200  "bytes do PDF"
// @Failure      303  "sem permissão; redireciona para a listagem"
// @Failure      400  {object}  dto.ErrorResponse  "proposição ainda não protocolada"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/proposicoes/{id}/comprovante [get]
func (h *ProposicaoHandler) Comprovante(c *fiber.Ctx) error {
	pdf, nome, err := h.comprovanteUC.Download(identidade(c), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAcessoNegado):
			return c.Redirect(RotaPadrao, fiber.StatusSeeOther)
		case errors.Is(err, domain.ErrNaoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proposição não encontrada"})
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_FILED", Message: "o comprovante só existe para proposições protocoladas"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+nome+`"`)
	return c.Send(pdf)
}

// mapearErro traduz erros de domínio das mutações em status HTTP.
func (h *ProposicaoHandler) mapearErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proposição não encontrada"})
	case errors.Is(err, domain.ErrAcessoNegado):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operação não permitida para este perfil ou estado"})
	case errors.Is(err, domain.ErrTransicaoInvalida):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transição de status fora da ordem rascunho → enviada → protocolada → arquivada"})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "anexo inválido: apenas PDF de até 5 MB"})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
}
