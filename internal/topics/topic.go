package topics

// Topic is a category articles are filed under. Slug is the natural key
// and is stored exactly as supplied, never normalized.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// NewTopic is the creation payload. Pointer fields let absent JSON fields
// reach the store as NULL so its NOT-NULL constraints report the missing
// field.
type NewTopic struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}
