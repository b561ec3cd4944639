package models

import (
	"errors"
	"server/db"

	"gorm.io/gorm"
)

// Follow is a directed edge: User follows Author.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_follow,unique,priority:1"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_follow,unique,priority:2"`
	Author    User   `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

var ErrSelfFollow = errors.New("users cannot follow themselves")

// FollowCreate adds the edge if it doesn't exist yet. Creating an edge that
// is already present is not an error - callers treat it as success.
func FollowCreate(userID, authorID uint64) error {
	if userID == authorID {
		return ErrSelfFollow
	}
	// Insert-if-absent in one transaction so that two concurrent requests
	// cannot both pass the existence check.
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		follow := Follow{UserID: userID, AuthorID: authorID}
		return tx.Where(Follow{UserID: userID, AuthorID: authorID}).FirstOrCreate(&follow).Error
	})
}

// FollowDelete removes the edge if present. Missing edges are a no-op.
func FollowDelete(userID, authorID uint64) error {
	return db.Instance.Where("user_id = ? and author_id = ?", userID, authorID).Delete(&Follow{}).Error
}

// IsFollowing reports whether user currently follows author.
func IsFollowing(userID, authorID uint64) bool {
	if userID == 0 {
		return false
	}
	var count int64
	if db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", userID, authorID).
		Count(&count).Error != nil {
		return false
	}
	return count > 0
}
