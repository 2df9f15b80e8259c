package entity

// Tipos de proveedor según el API. El tipo alimenta el filtro categórico del panel.
const (
	SupplierLocal         = "local"
	SupplierNacional      = "nacional"
	SupplierInternacional = "internacional"
)

// Supplier representa un proveedor del catálogo.
type Supplier struct {
	ID      int    `json:"idProveedor"`
	Name    string `json:"nombreProveedor"`
	Country string `json:"pais"`
	Type    string `json:"tipoProveedor"`
	Contact string `json:"nombreContacto"`
	Phone   string `json:"telefono"`
	Email   string `json:"correo"`
	Active  bool   `json:"activo"`
}
