package model

// MovieModel is the persisted form of a movie. The genre is embedded as a
// snapshot document, not a reference to the genres collection.
type MovieModel struct {
	ID              string             `bson:"_id"`
	Title           string             `bson:"title"`
	Genre           GenreSnapshotModel `bson:"genre"`
	NumberInStock   int                `bson:"numberInStock"`
	DailyRentalRate float64            `bson:"dailyRentalRate"`
}
