// Package refindex builds the per-run lookup tables used by every reference check.
//
// The index is rebuilt from a snapshot on every validation run and never updated incrementally,
// since the authoring layer may have edited the graph arbitrarily in the meantime.
package refindex

import "github.com/manosdvd/agency/internal/models"

// Set is a set of entity ids.
type Set map[string]struct{}

// Has reports whether id is in the set. The empty id is never a member.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s Set) add(id string) {
	if id != "" {
		s[id] = struct{}{}
	}
}

// Index holds the valid ids of each entity kind plus first-occurrence lookups for the kinds
// whose fields the craft heuristics inspect.
type Index struct {
	Characters Set
	Locations  Set
	Items      Set
	Factions   Set
	Districts  Set
	Clues      Set

	characters map[string]*models.Character
	locations  map[string]*models.Location
	items      map[string]*models.Item
}

// Build indexes the world and case snapshot. Entities with an empty id are left out.
func Build(world *models.WorldData, c *models.CaseData) *Index {
	idx := &Index{
		Characters: Set{},
		Locations:  Set{},
		Items:      Set{},
		Factions:   Set{},
		Districts:  Set{},
		Clues:      Set{},
		characters: map[string]*models.Character{},
		locations:  map[string]*models.Location{},
		items:      map[string]*models.Item{},
	}

	if world != nil {
		for i := range world.Characters {
			ch := &world.Characters[i]
			idx.Characters.add(ch.ID)
			if _, seen := idx.characters[ch.ID]; !seen && ch.ID != "" {
				idx.characters[ch.ID] = ch
			}
		}
		for i := range world.Locations {
			loc := &world.Locations[i]
			idx.Locations.add(loc.ID)
			if _, seen := idx.locations[loc.ID]; !seen && loc.ID != "" {
				idx.locations[loc.ID] = loc
			}
		}
		for i := range world.Items {
			item := &world.Items[i]
			idx.Items.add(item.ID)
			if _, seen := idx.items[item.ID]; !seen && item.ID != "" {
				idx.items[item.ID] = item
			}
		}
		for _, f := range world.Factions {
			idx.Factions.add(f.ID)
		}
		for _, d := range world.Districts {
			idx.Districts.add(d.ID)
		}
	}

	if c != nil {
		for _, clue := range c.Clues {
			idx.Clues.add(clue.ClueID)
		}
	}

	return idx
}

// Character resolves a character id. When ids collide the first entity in collection order wins.
func (idx *Index) Character(id string) (*models.Character, bool) {
	ch, ok := idx.characters[id]
	return ch, ok
}

// Location resolves a location id. When ids collide the first entity in collection order wins.
func (idx *Index) Location(id string) (*models.Location, bool) {
	loc, ok := idx.locations[id]
	return loc, ok
}

// Item resolves an item id. When ids collide the first entity in collection order wins.
func (idx *Index) Item(id string) (*models.Item, bool) {
	item, ok := idx.items[id]
	return item, ok
}
