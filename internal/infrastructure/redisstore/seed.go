package redisstore

import (
	"context"

	"github.com/camaradigital/proposicoes-api/internal/domain/entity"
)

// Dados de demonstração gravados no primeiro acesso a cada coleção, somente
// quando a chave correspondente está totalmente ausente do escopo. Uma coleção
// esvaziada por exclusões ([]) nunca é ressemeada.

func usuariosSemente() []*entity.Usuario {
	return []*entity.Usuario{
		{
			ID:     "1",
			Nome:   "Administrador Geral",
			Login:  "admin",
			Senha:  "admin123",
			Perfil: entity.PerfilAdminGeral,
		},
		{
			ID:     "2",
			Nome:   "João Vereador",
			Login:  "vereador",
			Senha:  "vereador123",
			Perfil: entity.PerfilVereador,
		},
	}
}

func proposicoesSemente() []*entity.Proposicao {
	envio := agoraISO()
	protocolo := agoraISO()
	return []*entity.Proposicao{
		{
			ID:          "1",
			Tipo:        "Projeto de Lei",
			Titulo:      "Reforma da Praça Central",
			Ementa:      "Projeto para reforma e revitalização da praça central do município",
			AutorID:     "2",
			Status:      entity.StatusEnviada,
			DataEnvio:   &envio,
			Anexo:       nil,
			Observacoes: "Projeto prioritário para o primeiro semestre",
		},
		{
			ID:            "2",
			Tipo:          "Requerimento",
			Titulo:        "Manutenção de Vias Públicas",
			Ementa:        "Solicitação de manutenção urgente das vias públicas do bairro Jardim das Flores",
			AutorID:       "2",
			Status:        entity.StatusProtocolada,
			DataEnvio:     &envio,
			DataProtocolo: &protocolo,
			Anexo:         nil,
			Observacoes:   "Atender reclamações dos moradores",
		},
	}
}

// semearUsuarios grava os usuários de demonstração se a chave não existe.
func (s *Store) semearUsuarios(ctx context.Context) error {
	n, err := s.db.Exists(ctx, chaveUsuarios).Result()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.gravarColecao(ctx, chaveUsuarios, usuariosSemente())
}

// semearProposicoes grava as proposições de demonstração se a chave não existe.
func (s *Store) semearProposicoes(ctx context.Context) error {
	n, err := s.db.Exists(ctx, chaveProposicoes).Result()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.gravarColecao(ctx, chaveProposicoes, proposicoesSemente())
}
