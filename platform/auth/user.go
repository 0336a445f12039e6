package auth

// Capabilities checked by the note endpoints.
const (
	Read             = "read"
	ReadPrivatePosts = "read_private_posts"
	EditPosts        = "edit_posts"
	EditOthersPosts  = "edit_others_posts"
)

// roleCapabilities mirrors the default role map of the content store.
var roleCapabilities = map[string][]string{
	"administrator": {Read, ReadPrivatePosts, EditPosts, EditOthersPosts},
	"editor":        {Read, ReadPrivatePosts, EditPosts, EditOthersPosts},
	"author":        {Read, EditPosts},
	"contributor":   {Read, EditPosts},
	"subscriber":    {Read},
}

// User is the identity attached to a request. The zero value is an anonymous visitor.
type User struct {
	ID    uint64
	Roles []string
}

func (u User) Authenticated() bool {
	return u.ID != 0
}

func (u User) UserID() uint64 {
	return u.ID
}

// Can reports whether any of the user's roles grants capability.
func (u User) Can(capability string) bool {
	if !u.Authenticated() {
		return false
	}
	for _, role := range u.Roles {
		for _, c := range roleCapabilities[role] {
			if c == capability {
				return true
			}
		}
	}
	return false
}

// KnownRole reports whether role is part of the role map.
func KnownRole(role string) bool {
	_, ok := roleCapabilities[role]
	return ok
}
