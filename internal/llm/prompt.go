// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package llm

import (
	"fmt"
	"strings"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
)

// DefaultPersonaPrompt is the generic assistant persona used when a
// request does not select one.
const DefaultPersonaPrompt = "You are a helpful AI assistant for location-based queries."

// maxPlaces caps how many nearby places are embedded in the prompt.
const maxPlaces = 5

// LocationPrompt renders the system instruction for a location query
// from the persona text, the current map location, and optional
// nearby-place context.
func LocationPrompt(systemPrompt string, location chatdb.Location, places []chatdb.Place) string {
	if systemPrompt == "" {
		systemPrompt = DefaultPersonaPrompt
	}

	where := location.Address
	if where == "" {
		where = fmt.Sprintf("coordinates (%v, %v)", location.Lat, location.Lng)
	}

	placesSection := ""
	poiConstraint := ""
	if len(places) > 0 {
		if len(places) > maxPlaces {
			places = places[:maxPlaces]
		}
		var b strings.Builder
		b.WriteString("Nearby places:\n")
		for _, p := range places {
			b.WriteString("- " + p.Name)
			if p.Vicinity != "" {
				b.WriteString(" (" + p.Vicinity + ")")
			}
			if p.Rating > 0 {
				fmt.Fprintf(&b, ", rated %v", p.Rating)
			}
			if p.Location != nil {
				fmt.Fprintf(&b, ", at coordinates (%v, %v)", p.Location.Lat, p.Location.Lng)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		placesSection = b.String()
		poiConstraint = "\n\nOnly report points of interest drawn from the nearby places listed above, and copy their coordinates exactly as provided."
	}

	return fmt.Sprintf(locationPrompt, systemPrompt, where, placesSection) + poiConstraint
}

const locationPrompt = `%s The user is looking at %s.

%sProvide relevant information about this location based on the user's query. Format your response as a JSON object with these fields:
- description: A detailed response to the user's query about the location
- points_of_interest: Notable places or features nearby (if relevant), an array of objects with fields name, description, and coordinates {lat, lng}
- fun_fact: An interesting fact about the area (if available)`
