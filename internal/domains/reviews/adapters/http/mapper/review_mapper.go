package mapper

import "github.com/enayetchefonline/partner-gateway/internal/domains/reviews/domain"

// Reply is one entry of a review's reply thread.
type Reply struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

// Review is the HTTP representation of one customer review.
type Review struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email,omitempty"`
	Food      int     `json:"food"`
	Service   int     `json:"service"`
	Value     int     `json:"value"`
	Average   float64 `json:"average"`
	Comment   string  `json:"comment,omitempty"`
	Published bool    `json:"published"`
	Replies   []Reply `json:"replies"`
}

// ReviewList wraps the listing.
type ReviewList struct {
	Reviews []Review `json:"reviews"`
}

// PublishRequest publishes or hides a review.
type PublishRequest struct {
	Published *bool `json:"published" binding:"required"`
}

// ReplyRequest posts a restaurant reply.
type ReplyRequest struct {
	Message string `json:"message" binding:"required"`
}

// FromReviews maps the listing into its HTTP shape.
func FromReviews(reviews []domain.Review) ReviewList {
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		replies := make([]Reply, 0, len(r.Replies))
		for _, reply := range r.Replies {
			replies = append(replies, Reply{ID: reply.ID, Author: reply.Author, Message: reply.Message})
		}
		out = append(out, Review{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Food:      r.Food,
			Service:   r.Service,
			Value:     r.Value,
			Average:   r.AverageRating(),
			Comment:   r.Comment,
			Published: r.Published,
			Replies:   replies,
		})
	}
	return ReviewList{Reviews: out}
}
