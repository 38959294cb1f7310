package domain

// Employee is one record returned by the directory API. Field values
// pass through to the exported files unmodified.
type Employee struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Title      string `json:"title"`
	Location   string `json:"location,omitempty"`
	ProfileURL string `json:"profileUrl,omitempty"`
}

type Company struct {
	Slug string
	ID   string
	Name string
	URL  string
}
