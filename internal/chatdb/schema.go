// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package chatdb

import "google.golang.org/genai"

var coordinatesSchema = &genai.Schema{
	Type:        "object",
	Description: "A latitude/longitude pair in decimal degrees.",
	Properties: map[string]*genai.Schema{
		"lat": {
			Type:        "number",
			Description: "The latitude in decimal degrees.",
		},
		"lng": {
			Type:        "number",
			Description: "The longitude in decimal degrees.",
		},
	},
	Required: []string{"lat", "lng"},
}

var LocationResponseSchema = &genai.Schema{
	Type:        "object",
	Description: "A structured answer to a question about a map location.",
	Required:    []string{"description"},
	Properties: map[string]*genai.Schema{
		"description": {
			Type:        "string",
			Description: "A detailed response to the user's query about the location.",
		},
		"points_of_interest": {
			Type:        "array",
			Description: "Notable places or features near the location, in display order.",
			Items: &genai.Schema{
				Type:        "object",
				Description: "A notable place near the location.",
				Properties: map[string]*genai.Schema{
					"name": {
						Type:        "string",
						Description: "The name of the place.",
					},
					"description": {
						Type:        "string",
						Description: "A short description of the place.",
					},
					"coordinates": coordinatesSchema,
				},
				Required: []string{"name", "description", "coordinates"},
			},
		},
		"fun_fact": {
			Type:        "string",
			Description: "An interesting fact about the area.",
		},
	},
}
