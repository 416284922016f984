package models

// Technician is a field worker that interventions can be assigned to.
// Available is flipped by assignment and completion/cancellation.
type Technician struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	Speciality string `bson:"speciality" json:"speciality"`
	Available  bool   `bson:"available" json:"available"`
	Phone      string `bson:"phone" json:"phone"`
}
