package entity

// Status do ciclo de vida de uma Proposicao. A progressão é estritamente
// linear: rascunho → enviada → protocolada → arquivada.
const (
	StatusRascunho    = "rascunho"
	StatusEnviada     = "enviada"
	StatusProtocolada = "protocolada"
	StatusArquivada   = "arquivada"
)

// Proposicao representa uma proposição legislativa (projeto de lei,
// requerimento, indicação...). Os nomes JSON seguem o layout persistido.
type Proposicao struct {
	ID            string  `json:"id"`
	Tipo          string  `json:"tipo"`
	Titulo        string  `json:"titulo"`
	Ementa        string  `json:"ementa"`
	AutorID       string  `json:"autor_id"`
	Status        string  `json:"status"`
	DataEnvio     *string `json:"data_envio"`               // ISO 8601; marcada uma única vez ao enviar
	DataProtocolo *string `json:"data_protocolo,omitempty"` // ISO 8601; marcada uma única vez ao protocolar
	Anexo         *string `json:"anexo"`                    // data URI base64 (application/pdf) ou nulo
	Observacoes   string  `json:"observacoes"`
}

// Editavel informa se a proposição ainda aceita edição de campos.
// Após sair de rascunho os campos tornam-se imutáveis.
func (p *Proposicao) Editavel() bool {
	return p.Status == StatusRascunho
}

// proximoStatus define o grafo linear de transições.
var proximoStatus = map[string]string{
	StatusRascunho:    StatusEnviada,
	StatusEnviada:     StatusProtocolada,
	StatusProtocolada: StatusArquivada,
}

// TransicaoValida informa se a mudança de status respeita a ordem linear.
// Repetir o status atual é considerado válido (operação idempotente).
func TransicaoValida(atual, novo string) bool {
	if atual == novo {
		return true
	}
	return proximoStatus[atual] == novo
}

// StatusValido valida o valor do campo status.
func StatusValido(s string) bool {
	switch s {
	case StatusRascunho, StatusEnviada, StatusProtocolada, StatusArquivada:
		return true
	}
	return false
}

// StatusLabel devolve o rótulo de exibição do status (usado no comprovante).
func StatusLabel(s string) string {
	switch s {
	case StatusRascunho:
		return "Rascunho"
	case StatusEnviada:
		return "Enviada"
	case StatusProtocolada:
		return "Protocolada"
	case StatusArquivada:
		return "Arquivada"
	default:
		return s
	}
}
