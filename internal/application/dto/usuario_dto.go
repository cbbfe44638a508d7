package dto

// CreateUsuarioRequest entrada para criar um usuário. A confirmação de senha
// é validada antes de qualquer persistência.
type CreateUsuarioRequest struct {
	Nome           string `json:"nome" validate:"required,min=1,max=200"`
	Login          string `json:"login" validate:"required,min=1,max=100"`
	Senha          string `json:"senha" validate:"required"`
	ConfirmarSenha string `json:"confirmar_senha" validate:"required,eqfield=Senha"`
	Perfil         string `json:"perfil" validate:"required,oneof=admin_geral vereador"`
}

// UpdateUsuarioRequest entrada para atualizar um usuário (substituição completa).
type UpdateUsuarioRequest struct {
	Nome           string `json:"nome" validate:"required,min=1,max=200"`
	Login          string `json:"login" validate:"required,min=1,max=100"`
	Senha          string `json:"senha" validate:"required"`
	ConfirmarSenha string `json:"confirmar_senha" validate:"required,eqfield=Senha"`
	Perfil         string `json:"perfil" validate:"required,oneof=admin_geral vereador"`
}

// UsuarioResponse saída de um usuário (nunca inclui a senha).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Login  string `json:"login"`
	Perfil string `json:"perfil"`
}

// LoginRequest entrada para autenticação.
type LoginRequest struct {
	Login string `json:"login" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse saída com token JWT e o usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
