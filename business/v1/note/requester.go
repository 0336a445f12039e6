package note

import "github.com/ribgsilva/wp-notes-api/platform/auth"

// Requester is the user on whose behalf a request runs.
type Requester interface {
	Authenticated() bool
	Can(capability string) bool
	UserID() uint64
}

// Authorize checks that who holds capability. Anonymous requesters get
// ErrUnauthorized, authenticated ones lacking it get ErrForbidden.
func Authorize(who Requester, capability string) error {
	if who.Can(capability) {
		return nil
	}
	if who.Authenticated() {
		return ErrForbidden
	}
	return ErrUnauthorized
}

// CanRead reports whether who may see n. Published notes are public, private
// ones need read_private_posts or ownership. Any other status (draft, pending,
// future) is only visible to those who may edit the note.
func CanRead(who Requester, n Note) error {
	owner := who.Authenticated() && who.UserID() == n.Author

	switch n.Status {
	case StatusPublish:
		return nil
	case StatusPrivate:
		if owner {
			return nil
		}
		return Authorize(who, auth.ReadPrivatePosts)
	default:
		if owner && who.Can(auth.EditPosts) {
			return nil
		}
		return Authorize(who, auth.EditOthersPosts)
	}
}
