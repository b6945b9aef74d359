package domain

// MenuItem is one navigation entry.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// MenuSection groups navigation entries under a heading. Sections an operator
// may not use are omitted entirely rather than rendered disabled.
type MenuSection struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}
