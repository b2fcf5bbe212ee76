package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Password holds the bcrypt hash and is never
// serialized to clients.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// Snapshot returns a copy of the user without the password hash, suitable for
// embedding into other documents.
func (u *User) Snapshot() User {
	return User{ID: u.ID, Username: u.Username}
}
