package dto

// ErrorResponse cuerpo de error HTTP: {error, details?}.
// Details puede incluir el mensaje crudo de persistencia: trade-off deliberado
// a favor de la diagnosticabilidad (API no expuesta públicamente).
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse respuesta de éxito sin payload (ej. DELETE).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaginationDTO metadatos de página en listados de facturas.
// TotalCount refleja la vista filtrada (search+status), no el total del tenant.
type PaginationDTO struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}
