package models

type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Name      string `json:"name" bson:"name"`
	Price     Money  `json:"price" bson:"price"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

func (i CartItem) Subtotal() Money {
	return i.Price.Mul(i.Quantity)
}

// Cart is an ordered list of lines. Adding a product already present
// creates a separate line.
type Cart struct {
	Items []CartItem `json:"items"`
}

func (c *Cart) Add(item CartItem) {
	c.Items = append(c.Items, item)
}

// Remove deletes the first line for productID and reports whether one existed.
func (c *Cart) Remove(productID string) bool {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) Len() int {
	return len(c.Items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Snapshot returns a copy of the lines that later cart mutations cannot reach.
func (c *Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}

func (c *Cart) Total() (Money, error) {
	return SumItems(c.Items)
}

func SumItems(items []CartItem) (Money, error) {
	total := Money{}
	for _, item := range items {
		var err error
		total, err = total.Add(item.Subtotal())
		if err != nil {
			return Money{}, err
		}
	}
	if total.Currency == "" {
		total.Currency = CurrencyUSD
	}
	return total, nil
}
