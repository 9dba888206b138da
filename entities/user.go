package entities

type User struct {
	ID       string `bson:"_id" json:"id"`
	FamilyID string `bson:"family_id,omitempty" json:"family_id,omitempty"`
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
	Role     string `bson:"role" json:"role"` // "owner", "member"

	Timestamp `bson:",inline"`
}

type Family struct {
	ID         string `bson:"_id" json:"id"`
	Name       string `bson:"name" json:"name"`
	InviteCode string `bson:"invite_code" json:"invite_code"`
	OwnerID    string `bson:"owner_id" json:"owner_id"`

	Timestamp `bson:",inline"`
}
