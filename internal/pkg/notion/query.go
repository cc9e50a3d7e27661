package notion

// Sort directions accepted by the store.
const (
	Ascending  = "ascending"
	Descending = "descending"
)

type QueryRequest struct {
	Filter   *Filter `json:"filter,omitempty"`
	Sorts    []Sort  `json:"sorts,omitempty"`
	PageSize int     `json:"page_size,omitempty"`
}

// Filter is either a compound And of sub-filters or a single condition on a
// named property.
type Filter struct {
	And      []Filter           `json:"and,omitempty"`
	Property string             `json:"property,omitempty"`
	Date     *DateCondition     `json:"date,omitempty"`
	Relation *RelationCondition `json:"relation,omitempty"`
}

type DateCondition struct {
	Equals    string `json:"equals,omitempty"`
	OnOrAfter string `json:"on_or_after,omitempty"`
}

type RelationCondition struct {
	Contains string `json:"contains,omitempty"`
}

type Sort struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

type QueryResponse struct {
	Results []Page `json:"results"`
	HasMore bool   `json:"has_more"`
}

type CreatePageRequest struct {
	Parent     Parent                   `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
}

type Parent struct {
	DatabaseID string `json:"database_id"`
}

type updatePageRequest struct {
	Properties map[string]PropertyValue `json:"properties"`
}
