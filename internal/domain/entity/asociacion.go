package entity

// Association es el vínculo muchos-a-muchos entre producto y proveedor.
// El API lo entrega con los nombres denormalizados; un ID de asociación
// determina exactamente un par (producto, proveedor).
type Association struct {
	ID           int    `json:"idProductoProveedor"`
	ProductID    int    `json:"idProducto"`
	SupplierID   int    `json:"idProveedor"`
	ProductCode  string `json:"codigoProducto"`
	ProductName  string `json:"nombreProducto"`
	SupplierName string `json:"nombreProveedor"`
	Country      string `json:"pais"`
	LineName     string `json:"nombreLinea"`
}

// Label devuelve la etiqueta legible producto/proveedor usada en las vistas de órdenes.
func (a Association) Label() string {
	return a.ProductName + " / " + a.SupplierName
}
