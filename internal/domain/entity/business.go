package entity

// DefaultBusinessName nombre del negocio cuando no se ha configurado.
const DefaultBusinessName = "LedgerFlow"

// Business metadatos estáticos del negocio (clave-valor, fuera del núcleo del libro).
type Business struct {
	Name    string
	Owner   string
	Phone   string
	Address string
}
