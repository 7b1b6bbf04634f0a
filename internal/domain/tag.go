package domain

// TagCount is a tag in use across the board together with the number of
// requests that carry it. It is derived from stored requests; there is no
// separate tag registry.
type TagCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
