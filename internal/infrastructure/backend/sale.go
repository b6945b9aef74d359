package backend

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/smartinventory/pos-admin/internal/core/ports"
)

type salePayload struct {
	CustomerName string          `json:"customerName"`
	ProductIDs   []int64         `json:"productIds"`
	Quantities   []int           `json:"quantities"`
	UserID       int64           `json:"userId"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

type saleDTO struct {
	ID int64 `json:"id"`
}

// SubmitSale posts a completed sale. Product IDs and quantities pair up
// positionally, matching the backend contract.
func (c *Client) SubmitSale(ctx context.Context, in ports.SaleInput) (ports.SaleResult, error) {
	raw, err := c.call(ctx, "submit_sale", http.MethodPost, "/sale", nil, salePayload{
		CustomerName: in.CustomerName,
		ProductIDs:   in.ProductIDs,
		Quantities:   in.Quantities,
		UserID:       in.UserID,
		TotalAmount:  in.TotalAmount,
	})
	if err != nil {
		return ports.SaleResult{}, err
	}
	var d saleDTO
	if err := decode(raw, &d); err != nil {
		return ports.SaleResult{}, err
	}
	return ports.SaleResult{ID: d.ID}, nil
}
