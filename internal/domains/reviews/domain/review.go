package domain

// Reply is one entry of a review's reply thread. Author 1 is the
// restaurant, anything else the customer.
type Reply struct {
	ID      string
	Author  string
	Message string
}

// Review is one customer review with its ratings and reply thread.
type Review struct {
	ID        string
	Name      string
	Email     string
	Food      int
	Service   int
	Value     int
	Comment   string
	Published bool
	Replies   []Reply
}

// AverageRating is the mean of the three rating axes.
func (r Review) AverageRating() float64 {
	return float64(r.Food+r.Service+r.Value) / 3
}
