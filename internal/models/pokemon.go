package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DexID is the national dex identifier of a Pokémon.
// The backend sends plain numbers for regular entries and strings for
// alternate forms (e.g. "3-mega-venusaur"), so both are accepted.
type DexID string

// UnmarshalJSON accepts a JSON number or a JSON string
func (d *DexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid dex id %s: %w", data, err)
		}
		*d = DexID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid dex id %s: %w", data, err)
	}
	*d = DexID(n.String())
	return nil
}

// MarshalJSON writes canonical numeric ids ("25") as numbers and everything
// else, including "001" or "+5", as strings so the id survives a round trip
func (d DexID) MarshalJSON() ([]byte, error) {
	if n, ok := d.Number(); ok && strconv.Itoa(n) == string(d) {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(d))
}

// Number returns the numeric value of the id if it is purely numeric
func (d DexID) Number() (int, bool) {
	n, err := strconv.Atoi(string(d))
	if err != nil {
		return 0, false
	}
	return n, true
}

// String returns the id as it appears in URLs and search matching
func (d DexID) String() string {
	return string(d)
}

// Display renders the id the way the dex shows it: "#001", "#025", "#3-mega-venusaur"
func (d DexID) Display() string {
	if n, ok := d.Number(); ok {
		return fmt.Sprintf("#%03d", n)
	}
	return "#" + string(d)
}

// Stats holds the six base stats of a Pokémon
type Stats struct {
	HP             int `json:"hp"`
	Attack         int `json:"attack"`
	Defense        int `json:"defense"`
	SpecialAttack  int `json:"sp_attack"`
	SpecialDefense int `json:"sp_defense"`
	Speed          int `json:"speed"`
}

// StatName identifies one of the six base stats
type StatName string

const (
	StatHP             StatName = "hp"
	StatAttack         StatName = "attack"
	StatDefense        StatName = "defense"
	StatSpecialAttack  StatName = "sp_attack"
	StatSpecialDefense StatName = "sp_defense"
	StatSpeed          StatName = "speed"
)

// StatOrder is the fixed rendering order of the base stats.
// Stat bars and the stat hexagon both depend on it.
var StatOrder = []StatName{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// StatLabels maps stats to their short display label
var StatLabels = map[StatName]string{
	StatHP:             "HP",
	StatAttack:         "Attack",
	StatDefense:        "Defense",
	StatSpecialAttack:  "Sp. Atk",
	StatSpecialDefense: "Sp. Def",
	StatSpeed:          "Speed",
}

// Value returns the value of a single stat (0 for unknown names)
func (s Stats) Value(name StatName) int {
	switch name {
	case StatHP:
		return s.HP
	case StatAttack:
		return s.Attack
	case StatDefense:
		return s.Defense
	case StatSpecialAttack:
		return s.SpecialAttack
	case StatSpecialDefense:
		return s.SpecialDefense
	case StatSpeed:
		return s.Speed
	}
	return 0
}

// Values returns the six stats in StatOrder
func (s Stats) Values() []int {
	values := make([]int, len(StatOrder))
	for i, name := range StatOrder {
		values[i] = s.Value(name)
	}
	return values
}

// Sum adds up the six base stats
func (s Stats) Sum() int {
	return s.HP + s.Attack + s.Defense + s.SpecialAttack + s.SpecialDefense + s.Speed
}

// Pokemon represents a PokemonRecord as returned by the backend.
// The stats are flattened into the top-level JSON object.
type Pokemon struct {
	Key    string   `json:"_id,omitempty"` // backend record key, not the dex id
	ID     DexID    `json:"id"`
	Name   string   `json:"name"`
	Avatar string   `json:"avatar"`
	Types  []string `json:"types"`
	Stats
	Total int      `json:"total"`
	Moves []string `json:"moves"`
}

// BaseTotal returns the stored total, falling back to the sum of the stats
func (p Pokemon) BaseTotal() int {
	if p.Total > 0 {
		return p.Total
	}
	return p.Stats.Sum()
}

// HasMoves reports whether the Pokémon declares any learnable moves
func (p Pokemon) HasMoves() bool {
	return len(p.Moves) > 0
}
