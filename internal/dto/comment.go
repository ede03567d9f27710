package dto

import "time"

// CreateCommentRequest is the JSON body for POST /dog_facts/{id}/comments.
type CreateCommentRequest struct {
	Body *string `json:"body"`
}

// Missing returns the names of required fields absent from the body.
func (r CreateCommentRequest) Missing() []string {
	var missing []string
	if r.Body == nil {
		missing = append(missing, "body")
	}
	return missing
}

type CommentResponse struct {
	ID          int64        `json:"id"`
	Body        string       `json:"body"`
	DateCreated time.Time    `json:"dateCreated"`
	FactID      int64        `json:"fact_id"`
	User        UserResponse `json:"user"`
}
