package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/domain"
	"github.com/smartinventory/pos-admin/internal/core/ports"
)

type purchaseDTO struct {
	ID         int64           `json:"id"`
	Product    *productDTO     `json:"product"`
	Supplier   *supplierDTO    `json:"supplier"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (d purchaseDTO) toDomain() domain.Purchase {
	p := domain.Purchase{
		ID:         d.ID,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
		TotalPrice: d.TotalPrice,
		CreatedAt:  d.CreatedAt,
	}
	if d.Product != nil {
		p.ProductID = d.Product.ID
		p.ProductName = d.Product.Name
	}
	if d.Supplier != nil {
		p.SupplierID = d.Supplier.ID
		p.SupplierName = d.Supplier.displayName()
	}
	return p
}

func (c *Client) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	raw, err := c.call(ctx, "list_purchases", http.MethodGet, "/purchases", nil, nil)
	if err != nil {
		return nil, err
	}
	var dtos []purchaseDTO
	if err := decode(raw, &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Purchase, len(dtos))
	for i, d := range dtos {
		out[i] = d.toDomain()
	}
	return out, nil
}

type purchasePayload struct {
	ProductID  int64           `json:"productId"`
	SupplierID int64           `json:"supplierId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
}

func (c *Client) CreatePurchase(ctx context.Context, in ports.PurchaseInput) (domain.Purchase, error) {
	raw, err := c.call(ctx, "create_purchase", http.MethodPost, "/purchases/purchase", nil, purchasePayload{
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
	})
	if err != nil {
		return domain.Purchase{}, err
	}
	var d purchaseDTO
	if err := decode(raw, &d); err != nil {
		return domain.Purchase{}, err
	}
	return d.toDomain(), nil
}
