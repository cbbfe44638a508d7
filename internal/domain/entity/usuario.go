package entity

// Perfis válidos para Usuario.
const (
	PerfilAdminGeral = "admin_geral"
	PerfilVereador   = "vereador"
)

// Usuario representa um usuário do sistema (administrador geral ou vereador).
//
// A senha é armazenada em texto plano, parte do layout JSON persistido;
// as respostas HTTP nunca a serializam.
type Usuario struct {
	ID     string `json:"id"`
	Nome   string `json:"nome"`
	Login  string `json:"login"`
	Senha  string `json:"senha"`
	Perfil string `json:"perfil"` // admin_geral, vereador
}

// IsAdmin informa se o usuário tem perfil de administrador geral.
func (u *Usuario) IsAdmin() bool {
	return u.Perfil == PerfilAdminGeral
}

// PerfilValido valida o valor do campo perfil.
func PerfilValido(p string) bool {
	return p == PerfilAdminGeral || p == PerfilVereador
}
