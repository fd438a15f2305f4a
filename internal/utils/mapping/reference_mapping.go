package mapping

import (
	"github.com/SscSPs/hisaabi_reports/internal/core/domain"
	"github.com/SscSPs/hisaabi_reports/internal/models"
)

// ToDomainParty converts a model Party to a domain Party
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:        m.PartyID,
		BusinessID:     m.BusinessID,
		Name:           m.Name,
		Role:           domain.PartyRole(m.Role),
		AreaID:         m.AreaID,
		CategoryID:     m.CategoryID,
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:            m.ProductID,
		BusinessID:           m.BusinessID,
		Title:                m.Title,
		CategoryID:           m.CategoryID,
		AvgPurchasePrice:     m.AvgPurchasePrice,
		PurchasePrice:        m.PurchasePrice,
		RetailPrice:          m.RetailPrice,
		WholesalePrice:       m.WholesalePrice,
		OpeningPurchasePrice: m.OpeningPurchasePrice,
		Active:               m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductQuantity converts a model ProductQuantity to a domain ProductQuantity
func ToDomainProductQuantity(m models.ProductQuantity) domain.ProductQuantity {
	return domain.ProductQuantity{
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		Current:     m.Current,
		Opening:     m.Opening,
		Minimum:     m.Minimum,
		Maximum:     m.Maximum,
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		BusinessID: m.BusinessID,
		Title:      m.Title,
		Kind:       domain.CategoryKind(m.Kind),
	}
}

// ToDomainWarehouse converts a model Warehouse to a domain Warehouse
func ToDomainWarehouse(m models.Warehouse) domain.Warehouse {
	return domain.Warehouse{
		WarehouseID: m.WarehouseID,
		BusinessID:  m.BusinessID,
		Title:       m.Title,
	}
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		BusinessID:      m.BusinessID,
		Title:           m.Title,
		Amount:          m.Amount,
		OpeningAmount:   m.OpeningAmount,
		Active:          m.IsActive,
	}
}

// ToDomainSlice converts every model with the given mapper.
func ToDomainSlice[M, D any](ms []M, mapper func(M) D) []D {
	out := make([]D, len(ms))
	for i, m := range ms {
		out[i] = mapper(m)
	}
	return out
}
