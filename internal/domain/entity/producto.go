package entity

// Product representa un producto del catálogo tal como lo entrega el API de inventario.
// Code es el identificador externo estable; la línea llega denormalizada (id + nombre).
type Product struct {
	ID       int    `json:"idProducto"`
	Code     string `json:"codigoProducto"`
	Name     string `json:"nombreProducto"`
	LineID   int    `json:"idLineaProducto"`
	LineName string `json:"nombreLinea"`
}
