package models

// Role names are an enumerated set; authorization compares against these
// constants, never against request-supplied strings.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Role struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`

	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}
