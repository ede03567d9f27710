package dto

// CreateFactRequest is the JSON body for POST /dog_facts.
// Presence is required; empty strings are accepted.
type CreateFactRequest struct {
	Title *string `json:"title"`
	Fact  *string `json:"fact"`
}

// Missing returns the names of required fields absent from the body.
func (r CreateFactRequest) Missing() []string {
	var missing []string
	if r.Title == nil {
		missing = append(missing, "title")
	}
	if r.Fact == nil {
		missing = append(missing, "fact")
	}
	return missing
}

// UpdateFactRequest is the JSON body for PUT /dog_facts/{id}.
// nil = не менять, значение = поставить. Only title and fact are mutable.
type UpdateFactRequest struct {
	Title *string `json:"title"`
	Fact  *string `json:"fact"`
}

type FactResponse struct {
	ID     int64        `json:"id"`
	Title  string       `json:"title"`
	Fact   string       `json:"fact"`
	UserID int64        `json:"user_id"`
	User   UserResponse `json:"user"`
}
