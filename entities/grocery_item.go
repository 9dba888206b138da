package entities

type GroceryItem struct {
	ID       string  `bson:"_id" json:"id"`
	FamilyID string  `bson:"family_id" json:"family_id"`
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Unit     string  `bson:"unit" json:"unit"`
	Checked  bool    `bson:"checked" json:"checked"`

	Timestamp `bson:",inline"`
}
