package entity

// Location representa una ubicación física (bodega, local) referenciada por
// filas de stock y por detalles de órdenes de entrada/salida.
type Location struct {
	ID   int    `json:"idUbicacion"`
	Name string `json:"nombreLugar"`
}
