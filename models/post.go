package models

type Post struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64  `gorm:"index:post_order"`
	UpdatedAt int64
	UserID    uint64
	User      User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID   *uint64
	Group     *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text      string `gorm:"type:text"`
	Image     string `gorm:"type:varchar(300)"` // Path within the storage bucket, empty if none
	Thumb     string `gorm:"type:varchar(300)"` // JPEG preview shown on list pages, empty if none
}
