package note

const (
	noteKey   = "notes.%d"
	authorKey = "notes.author.%d"

	columns = "id, author, post_type, post_status, title, content, modified_gmt"
)

type Note struct {
	Id          uint64
	Author      uint64
	Type        string
	Status      string
	Title       string
	Content     string
	ModifiedGmt string
}

type Query struct {
	Type   string
	Status string
	Author uint64
}
