package domain

// BlogPost is a marketing-site article. Unpublished posts are visible only
// through the admin routes.
type BlogPost struct {
	PostID    string `json:"postID"` // Primary Key (UUID)
	Title     string `json:"title"`
	Slug      string `json:"slug"` // Unique, used in public URLs
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
	AuthorID  string `json:"authorID"` // FK -> profiles.profile_id
	AuditFields
}
