package models

type Actor struct {
	ID      uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name    string `gorm:"not null" json:"name" example:"Tom"`
	Surname string `gorm:"not null" json:"surname" example:"Hardy"`
}

func (Actor) TableName() string {
	return "actor"
}
