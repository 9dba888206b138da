package entities

// Preference is a per-family named settings document: "dietary" carries the
// diet list, "budget" the weekly limit.
type Preference struct {
	ID       string   `bson:"_id" json:"id"`
	FamilyID string   `bson:"family_id" json:"family_id"`
	Name     string   `bson:"name" json:"name"`
	Diets    []string `bson:"diets,omitempty" json:"diets,omitempty"`
	Limit    float64  `bson:"limit,omitempty" json:"limit,omitempty"`

	Timestamp `bson:",inline"`
}
