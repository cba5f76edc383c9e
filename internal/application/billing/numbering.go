package billing

import (
	"regexp"
	"strconv"
	"time"

	"github.com/sran4/invoice-manager/internal/domain/repository"
)

// baseNumber sufijo inicial cuando el usuario no tiene facturas del año.
const baseNumber = 1000

// invoiceNumberRe: dos dígitos de año seguidos del sufijo numérico consecutivo.
var invoiceNumberRe = regexp.MustCompile(`^\d{2}(\d+)$`)

// NumberingService propone el siguiente número de factura del usuario,
// consecutivo por año calendario ("25" + 1000, 1001, ...).
//
// La propuesta es solo eso: dos llamadas concurrentes pueden recibir el mismo
// número y la carrera la resuelve el índice único al crear, no este servicio.
type NumberingService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewNumberingService construye el servicio.
func NewNumberingService(invoiceRepo repository.InvoiceRepository) *NumberingService {
	return &NumberingService{invoiceRepo: invoiceRepo}
}

// NextNumber devuelve el número propuesto para el usuario: prefijo de año (yy)
// concatenado con el sufijo del número más alto de ese año + 1, o 1000 si no
// hay facturas del año o el número almacenado no sigue el patrón.
func (s *NumberingService) NextNumber(userID string) (string, error) {
	prefix := time.Now().Format("06")
	last, err := s.invoiceRepo.LastNumberWithPrefix(userID, prefix)
	if err != nil {
		return "", err
	}
	return prefix + strconv.Itoa(nextSuffix(last)), nil
}

// nextSuffix parsea el sufijo del último número; números malformados cuentan
// como ausentes (nunca se propaga error por datos sucios).
func nextSuffix(last string) int {
	m := invoiceNumberRe.FindStringSubmatch(last)
	if m == nil {
		return baseNumber
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return baseNumber
	}
	return n + 1
}
