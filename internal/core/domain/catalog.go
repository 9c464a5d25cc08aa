package domain

import "time"

// RawMake is a row of the make catalog.
type RawMake struct {
	ID   int
	Name string
}

// RawModel is a row of the model catalog for a make.
type RawModel struct {
	MakeName  string
	ModelName string
}

// ModelCatalog lists the model names known for a make, in upstream order.
type ModelCatalog struct {
	Make       string    `json:"make"`
	ModelCount int       `json:"modelCount"`
	Models     []string  `json:"models"`
	FetchedAt  time.Time `json:"fetchedAt"`
}

// Make is an entry of the make catalog.
type Make struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MakeCatalog lists every make known to the decode service.
type MakeCatalog struct {
	MakeCount int       `json:"makeCount"`
	Makes     []Make    `json:"makes"`
	FetchedAt time.Time `json:"fetchedAt"`
}
