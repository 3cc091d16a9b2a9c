package domain

// Product is a stocked article. Amount may go negative to model backorders.
type Product struct {
	Document `bson:",inline"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Amount   int64   `json:"amount" bson:"amount"`
}
