package entity

// StockRow es una fila de hechos de stock ya aplanada por el API: trae los nombres
// de producto, proveedor y ubicación en lugar de claves foráneas. No pertenece a
// ninguna orden; representa existencia actual por (producto, proveedor, ubicación).
type StockRow struct {
	ID           int    `json:"idStock"`
	ProductCode  string `json:"codigoProducto"`
	ProductName  string `json:"nombreProducto"`
	SupplierName string `json:"nombreProveedor"`
	SupplierType string `json:"tipoProveedor"`
	LocationName string `json:"nombreUbicacion"`
	Quantity     int64  `json:"cantidad"`
}
