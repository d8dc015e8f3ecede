package models

// BlogPost is the database representation of a blog post row.
type BlogPost struct {
	PostID    string `db:"post_id"`
	Title     string `db:"title"`
	Slug      string `db:"slug"`
	Excerpt   string `db:"excerpt"`
	Content   string `db:"content"`
	Published bool   `db:"published"`
	AuthorID  string `db:"author_id"`
	AuditFields
}
