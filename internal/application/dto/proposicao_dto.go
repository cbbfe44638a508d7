package dto

// CreateProposicaoRequest entrada para criar uma proposição (nasce em rascunho).
type CreateProposicaoRequest struct {
	Tipo        string  `json:"tipo" validate:"required,max=100"`
	Titulo      string  `json:"titulo" validate:"required,max=300"`
	Ementa      string  `json:"ementa" validate:"required"`
	Anexo       *string `json:"anexo"`
	Observacoes string  `json:"observacoes"`
}

// UpdateProposicaoRequest entrada para editar uma proposição em rascunho.
type UpdateProposicaoRequest struct {
	Tipo        string  `json:"tipo" validate:"required,max=100"`
	Titulo      string  `json:"titulo" validate:"required,max=300"`
	Ementa      string  `json:"ementa" validate:"required"`
	Anexo       *string `json:"anexo"`
	Observacoes string  `json:"observacoes"`
}

// ProposicaoResponse saída de uma proposição, com o nome do autor resolvido.
type ProposicaoResponse struct {
	ID            string  `json:"id"`
	Tipo          string  `json:"tipo"`
	Titulo        string  `json:"titulo"`
	Ementa        string  `json:"ementa"`
	AutorID       string  `json:"autor_id"`
	AutorNome     string  `json:"autor_nome,omitempty"`
	Status        string  `json:"status"`
	DataEnvio     *string `json:"data_envio"`
	DataProtocolo *string `json:"data_protocolo,omitempty"`
	Anexo         *string `json:"anexo"`
	Observacoes   string  `json:"observacoes"`
}

// ResumoResponse contadores por status para o painel inicial.
// Para vereadores os números cobrem apenas as próprias proposições.
type ResumoResponse struct {
	Total        int `json:"total"`
	Rascunhos    int `json:"rascunhos"`
	Enviadas     int `json:"enviadas"`
	Protocoladas int `json:"protocoladas"`
	Arquivadas   int `json:"arquivadas"`
}
