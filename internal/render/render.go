// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package render turns a stored chat response into display text and the
// point-of-interest references that drive map marker placement.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0x16e8bea/LocationInquirer/internal/chatdb"
)

// POIRef identifies one point of interest within a chat's response so
// it can be looked up again when activated.
type POIRef struct {
	// ChatID is the id of the owning chat record.
	ChatID int

	// Index is the zero-based position of the entry in the response's
	// points_of_interest sequence.
	Index int
}

// Segment is one block of display text. POI is set when the segment is
// an interactive point-of-interest reference.
type Segment struct {
	Text string
	POI  *POIRef
}

// Rendered is the display form of a chat response. Exactly one of Raw
// and Segments is set: Raw carries the response verbatim when it was
// not valid JSON, Segments the structured rendering otherwise.
type Rendered struct {
	Raw      string
	Segments []Segment
}

// Structured reports whether the response parsed as JSON.
func (r Rendered) Structured() bool {
	return r.Segments != nil
}

// Text returns the full display text, segments separated by a blank
// line.
func (r Rendered) Text() string {
	if !r.Structured() {
		return r.Raw
	}
	parts := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		parts[i] = s.Text
	}
	return strings.Join(parts, "\n\n")
}

// Format renders a stored chat response. A response that is not a JSON
// object falls back to the raw variant; Format never fails.
func Format(chatID int, response string) Rendered {
	segments, err := formatObject(chatID, response)
	if err != nil {
		return Rendered{Raw: response}
	}
	return Rendered{Segments: segments}
}

var errNotObject = errors.New("render: response is not a JSON object")

// formatObject renders the key/value pairs of the response object in
// document order, which Go maps would not preserve.
func formatObject(chatID int, response string) ([]Segment, error) {
	dec := json.NewDecoder(strings.NewReader(response))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	segments := []Segment{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errNotObject
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		if key == "points_of_interest" {
			var pois []chatdb.PointOfInterest
			if err := json.Unmarshal(value, &pois); err == nil {
				segments = append(segments, Segment{Text: "Points of Interest:"})
				for i, poi := range pois {
					segments = append(segments, Segment{
						Text: fmt.Sprintf("- %s: %s", poi.Name, poi.Description),
						POI:  &POIRef{ChatID: chatID, Index: i},
					})
				}
				continue
			}
			// Not a sequence of places, render like any other key.
		}

		segments = append(segments, Segment{Text: key + ": " + formatValue(value)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errNotObject
	}
	return segments, nil
}

func formatValue(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}
	return buf.String()
}

// ActivatePOI re-parses the chat's response and returns its full
// point-of-interest sequence along with the activated index, for the map
// layer to place one marker per entry and highlight the activated one.
func ActivatePOI(rec chatdb.ChatRecord, index int) ([]chatdb.PointOfInterest, int, error) {
	var resp chatdb.LocationResponse
	if err := json.Unmarshal([]byte(rec.Response), &resp); err != nil {
		return nil, 0, fmt.Errorf("render: parsing chat %d response: %w", rec.ID, err)
	}
	if index < 0 || index >= len(resp.PointsOfInterest) {
		return nil, 0, fmt.Errorf("render: chat %d has no point of interest %d", rec.ID, index)
	}
	return resp.PointsOfInterest, index, nil
}
