package competence

// Competence is the fixed lookup set of declarable skills, seeded once.
type Competence struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Competence) TableName() string {
	return "competences"
}
