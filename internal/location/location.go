/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

// Package location serves the states/cities reference dataset that drives
// the landing pages and the quote enrichment (zip code → city).
package location

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed data/locations.json
var locationsJSON []byte

// State is a serviced US state.
type State struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Population   int    `json:"population"`
	Slug         string `json:"slug"`
}

// City is a serviced city with the zip codes it covers.
type City struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Population int      `json:"population"`
	ZipCodes   []string `json:"zipCodes"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Slug       string   `json:"slug"`
	StateAbbr  string   `json:"stateAbbr"`
	StateSlug  string   `json:"stateSlug"`
}

// Directory is a read-only lookup over the embedded location dataset.
type Directory struct {
	states []State
	cities []City
	byZip  map[string]*City
}

type dataset struct {
	States []State `json:"states"`
	Cities []City  `json:"cities"`
}

// NewDirectory loads the embedded dataset.
func NewDirectory() (*Directory, error) {
	return newDirectoryFromJSON(locationsJSON)
}

func newDirectoryFromJSON(data []byte) (*Directory, error) {
	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("unmarshal locations dataset: %w", err)
	}
	d := &Directory{states: ds.States, cities: ds.Cities, byZip: make(map[string]*City)}
	for i := range d.cities {
		for _, zip := range d.cities[i].ZipCodes {
			d.byZip[zip] = &d.cities[i]
		}
	}
	return d, nil
}

// States returns all serviced states.
func (d *Directory) States() []State {
	return d.states
}

// StateBySlug returns the state with the given slug.
func (d *Directory) StateBySlug(slug string) (State, bool) {
	for _, s := range d.states {
		if s.Slug == slug {
			return s, true
		}
	}
	return State{}, false
}

// CitiesByState returns all serviced cities of a state.
func (d *Directory) CitiesByState(stateSlug string) []City {
	var cities []City
	for _, c := range d.cities {
		if c.StateSlug == stateSlug {
			cities = append(cities, c)
		}
	}
	return cities
}

// CityBySlug returns the city with the given state and city slugs.
func (d *Directory) CityBySlug(stateSlug, citySlug string) (City, bool) {
	for _, c := range d.cities {
		if c.StateSlug == stateSlug && c.Slug == citySlug {
			return c, true
		}
	}
	return City{}, false
}

// FindByZip resolves a city from a zip code. The 5+4 form is matched by its
// 5-digit prefix. A miss returns false, it is not an error: the association
// is best-effort.
func (d *Directory) FindByZip(zip string) (City, bool) {
	if i := strings.IndexByte(zip, '-'); i >= 0 {
		zip = zip[:i]
	}
	c, ok := d.byZip[zip]
	if !ok {
		return City{}, false
	}
	return *c, true
}

// Nearby returns up to limit other cities in the same state,
// most populous first.
func (d *Directory) Nearby(stateSlug, citySlug string, limit int) []City {
	cities := d.CitiesByState(stateSlug)
	nearby := cities[:0]
	for _, c := range cities {
		if c.Slug != citySlug {
			nearby = append(nearby, c)
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].Population > nearby[j].Population })
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby
}
