package dto

// LookupRequest serves create and rename for the name-keyed lookup
// entities (category, brand, color, size).
type LookupRequest struct {
	Name string `json:"name"`
}

type RatingCreateRequest struct {
	ProductID uint   `json:"product_id"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}

type RatingUpdateRequest struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

func (r *RatingUpdateRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Score != nil {
		fields["score"] = *r.Score
	}
	if r.Comment != nil {
		fields["comment"] = *r.Comment
	}
	return fields
}
