package models

// CartLineItem is one purchasable line of the backend cart. Prices are minor
// currency units.
type CartLineItem struct {
	LineID           int64  `json:"cartDetailId"`
	ProductVariantID int64  `json:"productVariantId" validate:"required"`
	ProductName      string `json:"productName"`
	Color            string `json:"color"`
	Size             string `json:"size"`
	UnitPrice        int64  `json:"price" validate:"gte=0"`
	Quantity         int    `json:"quantity" validate:"required,min=1"`
	ProductImage     string `json:"productImage"`
}

type Cart struct {
	Items []CartLineItem `json:"items"`
}

// ItemCount feeds the header cart badge.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

type AddCartItemRequest struct {
	ProductVariantID int64 `json:"productVariantId" validate:"required"`
	Quantity         int   `json:"quantity" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	ProductVariantID int64 `json:"productVariantId" validate:"required"`
	Quantity         int   `json:"quantity" validate:"required,min=1"`
}

type RemoveCartItemsRequest struct {
	ProductVariantIDs []int64 `json:"productVariantIds" validate:"required,min=1"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
