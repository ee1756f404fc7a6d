package competence

import (
	competencedm "github.com/frahmantamala/recruitment-service/internal/core/datamodel/competence"
)

// Competence is one entry of the fixed lookup set applicants declare
// experience against.
type Competence struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromDataModel(c *competencedm.Competence) *Competence {
	return &Competence{
		ID:   c.ID,
		Name: c.Name,
	}
}

func ToDataModel(c *Competence) *competencedm.Competence {
	return &competencedm.Competence{
		ID:   c.ID,
		Name: c.Name,
	}
}

// ListResponse wraps the lookup set for the wizard's first step.
type ListResponse struct {
	Competences []*Competence `json:"competences"`
}
