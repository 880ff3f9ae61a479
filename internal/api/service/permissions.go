package service

import "reviewhub/internal/api/models"

// CanModify decides the object-level rule for reviews and comments:
// the author may touch their own resource, moderators and above may
// touch anyone's.
func CanModify(actor *models.User, authorID int64) bool {
	if actor == nil {
		return false
	}
	if actor.ID == authorID {
		return true
	}
	return actor.Role.IsModerator()
}
