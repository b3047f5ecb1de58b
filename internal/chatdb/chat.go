// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package chatdb

import (
	"encoding/json"
	"time"
)

// Location is a point on the map the user is looking at.
type Location struct {
	// Lat is the latitude in decimal degrees.
	Lat float64 `json:"lat" firestore:"lat"`

	// Lng is the longitude in decimal degrees.
	Lng float64 `json:"lng" firestore:"lng"`

	// Address is a reverse-geocoded human-readable label for the
	// location, resolved by the client.
	Address string `json:"address,omitempty" firestore:"address,omitempty"`
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	// Lat is the latitude in decimal degrees.
	Lat float64 `json:"lat" firestore:"lat"`

	// Lng is the longitude in decimal degrees.
	Lng float64 `json:"lng" firestore:"lng"`
}

// Place is a nearby place supplied by the client's map integration as
// context for a chat request.
type Place struct {
	// Name is the name of the place.
	Name string `json:"name"`

	// Vicinity is a short human-readable description of where the
	// place is, e.g. a street address.
	Vicinity string `json:"vicinity,omitempty"`

	// Rating is the place's aggregate user rating, 0 when unknown.
	Rating float64 `json:"rating,omitempty"`

	// Location is the precise position of the place when known.
	Location *Coordinates `json:"location,omitempty"`
}

// PointOfInterest is a named place returned by the model, rendered as a
// map marker by the client.
type PointOfInterest struct {
	// Name is the name of the place.
	Name string `json:"name"`

	// Description is a short description of the place.
	Description string `json:"description"`

	// Coordinates is the position of the place.
	Coordinates Coordinates `json:"coordinates"`
}

// UnmarshalJSON normalizes the two coordinate shapes the model has been
// observed to produce, a top-level "coordinates" field or a nested
// "geometry.location" field, into Coordinates.
func (p *PointOfInterest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        string       `json:"name"`
		Description string       `json:"description"`
		Coordinates *Coordinates `json:"coordinates"`
		Geometry    struct {
			Location *Coordinates `json:"location"`
		} `json:"geometry"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Name = raw.Name
	p.Description = raw.Description
	switch {
	case raw.Coordinates != nil:
		p.Coordinates = *raw.Coordinates
	case raw.Geometry.Location != nil:
		p.Coordinates = *raw.Geometry.Location
	default:
		p.Coordinates = Coordinates{}
	}
	return nil
}

// LocationResponse is the structured answer the model returns for a
// location query.
type LocationResponse struct {
	// Description is the answer to the user's query about the location.
	Description string `json:"description"`

	// PointsOfInterest are notable nearby places, in display order. The
	// index of an entry is also the key used to cross-reference it from
	// chat text to its map marker.
	PointsOfInterest []PointOfInterest `json:"points_of_interest,omitempty"`

	// FunFact is an interesting fact about the area, when available.
	FunFact string `json:"fun_fact,omitempty"`
}

// ChatRecord is a persisted question/answer/location exchange.
type ChatRecord struct {
	// ID is the unique sequential identifier of the record.
	ID int `json:"id" firestore:"id"`

	// Message is the user's question.
	Message string `json:"message" firestore:"message"`

	// Response is the model's answer, a serialized LocationResponse.
	Response string `json:"response" firestore:"response"`

	// SystemPrompt is the persona instruction text that produced the
	// response.
	SystemPrompt string `json:"systemPrompt" firestore:"systemPrompt"`

	// Location is the map location the question was asked about.
	Location Location `json:"location" firestore:"location"`

	// Timestamp is when the record was created.
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

// InsertChat is the input to create a ChatRecord. The store assigns the
// id and timestamp.
type InsertChat struct {
	// Message is the user's question.
	Message string `firestore:"message"`

	// Response is the model's answer, a serialized LocationResponse.
	Response string `firestore:"response"`

	// SystemPrompt is the persona instruction text that produced the
	// response.
	SystemPrompt string `firestore:"systemPrompt"`

	// Location is the map location the question was asked about.
	Location Location `firestore:"location"`
}
