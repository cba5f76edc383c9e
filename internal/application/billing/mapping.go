package billing

import (
	"github.com/sran4/invoice-manager/internal/application/dto"
	"github.com/sran4/invoice-manager/internal/domain/entity"
)

func toCustomerDTO(c *entity.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Fax:         c.Fax,
		CompanyName: c.CompanyName,
		Address: dto.AddressDTO{
			Street:  c.Address.Street,
			City:    c.Address.City,
			State:   c.Address.State,
			ZipCode: c.Address.ZipCode,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toInvoiceDTO(inv *entity.Invoice) dto.InvoiceDTO {
	items := make([]dto.InvoiceItemDTO, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemDTO{
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      it.Amount,
		})
	}
	return dto.InvoiceDTO{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Discount:      inv.Discount,
		Total:         inv.Total,
		Status:        inv.Status,
		Notes:         inv.Notes,
		Template:      inv.Template,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func toWorkDescriptionDTO(wd *entity.WorkDescription) dto.WorkDescriptionDTO {
	return dto.WorkDescriptionDTO{
		ID:          wd.ID,
		Title:       wd.Title,
		Description: wd.Description,
		Rate:        wd.Rate,
		CreatedAt:   wd.CreatedAt,
		UpdatedAt:   wd.UpdatedAt,
	}
}
