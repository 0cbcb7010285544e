// Package model contains the document models persisted to the store.
// Entity ids are UUID strings stored as the document _id.
package model

// GenreModel is the persisted form of a genre.
type GenreModel struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}

// GenreSnapshotModel is the genre copy embedded in a movie document.
type GenreSnapshotModel struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
}
