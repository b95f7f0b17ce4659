package dbmodels

type Skill struct {
	BaseModel
	Name string `gorm:"type:varchar(20);index"`
}
