package entities

// Group is managed by admin tooling and is read-only through the API.
type Group struct {
	GroupID     string
	Title       string
	Slug        string
	Description string
}
