package model

// UserModel is the persisted form of a user. Password holds only the bcrypt
// hash. Email carries a unique index created at startup.
type UserModel struct {
	ID       string `bson:"_id"`
	Name     string `bson:"name"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
	IsAdmin  bool   `bson:"isAdmin"`
}
