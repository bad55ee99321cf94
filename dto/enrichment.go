package dto

// ReviewSummaryDTO is the review-summary response. The catalogue skeleton
// (product id, name, review count) is always present; the AI fields are
// filled, defaulted or explained depending on the path taken.
//
// Message explains a successful-but-empty outcome ("no reviews"); Error
// explains a server misconfiguration or upstream failure. At most one of
// the two is set.
type ReviewSummaryDTO struct {
	ProductID   int64    `json:"product_id"`
	ProductName string   `json:"product_name"`
	ReviewCount int      `json:"review_count"`
	Summary     *string  `json:"summary"`
	Pros        []string `json:"pros"`
	Cons        []string `json:"cons"`
	Sentiment   *string  `json:"sentiment"`
	Message     string   `json:"message,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// RecommendationResponseDTO always carries the base product and candidate
// list; ai_message is either the model's explanation or a deterministic
// disabled/unavailable string.
type RecommendationResponseDTO struct {
	BaseProduct     ProductDTO   `json:"base_product"`
	Recommendations []ProductDTO `json:"recommendations"`
	AIMessage       string       `json:"ai_message"`
}

// SearchResponseDTO always carries the match list; explanation is either the
// model's text or a deterministic no-matches/disabled/unavailable string.
type SearchResponseDTO struct {
	Query       string       `json:"query"`
	Count       int          `json:"count"`
	Results     []ProductDTO `json:"results"`
	Explanation string       `json:"explanation"`
}

// PurchaseRecommendationDTO lists AI-suggested product ids (filtered to the
// live catalogue) for a user, plus the resolved products in model order.
type PurchaseRecommendationDTO struct {
	UserID     int64        `json:"user_id"`
	ProductIDs []int64      `json:"product_ids"`
	Products   []ProductDTO `json:"products"`
}
