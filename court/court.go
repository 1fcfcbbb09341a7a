package court

type Court struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Surface      string   `json:"surface"`
	Capacity     int      `json:"capacity"`
	PriceDay     int      `json:"priceDay"`
	PriceNight   int      `json:"priceNight"`
	PriceWeekend int      `json:"priceWeekend"`
	Features     []string `json:"features"`
	Active       bool     `json:"active"`
}
