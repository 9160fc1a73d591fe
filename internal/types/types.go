package types

// GeneratedFile is one file of an export bundle.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "HTML", "JSON", "TSX"
	Content  string `json:"content"`
}
