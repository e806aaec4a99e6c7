package models

// Alignment is a character's moral alignment on the classic nine-box grid.
type Alignment string

const (
	AlignmentLawfulGood     Alignment = "Lawful Good"
	AlignmentNeutralGood    Alignment = "Neutral Good"
	AlignmentChaoticGood    Alignment = "Chaotic Good"
	AlignmentLawfulNeutral  Alignment = "Lawful Neutral"
	AlignmentTrueNeutral    Alignment = "True Neutral"
	AlignmentChaoticNeutral Alignment = "Chaotic Neutral"
	AlignmentLawfulEvil     Alignment = "Lawful Evil"
	AlignmentNeutralEvil    Alignment = "Neutral Evil"
	AlignmentChaoticEvil    Alignment = "Chaotic Evil"
)

// CluePotential rates how useful an item is as evidence.
type CluePotential string

const (
	CluePotentialNone     CluePotential = "None"
	CluePotentialLow      CluePotential = "Low"
	CluePotentialMedium   CluePotential = "Medium"
	CluePotentialHigh     CluePotential = "High"
	CluePotentialCritical CluePotential = "Critical"
)

// WorldData is the World Graph: everything that exists independently of a specific mystery.
type WorldData struct {
	Characters []Character `json:"characters"`
	Locations  []Location  `json:"locations"`
	Items      []Item      `json:"items"`
	Factions   []Faction   `json:"factions"`
	Districts  []District  `json:"districts"`
	Sleuth     *Sleuth     `json:"sleuth,omitempty"`
}

// Character is a person in the world. Honesty and the likelihood scores range from 1 to 10.
type Character struct {
	ID               string    `json:"id"`
	FullName         string    `json:"fullName"`
	Alias            string    `json:"alias,omitempty"`
	Age              int       `json:"age,omitempty"`
	Biography        string    `json:"biography,omitempty"`
	Personality      string    `json:"personality,omitempty"`
	Alignment        Alignment `json:"alignment,omitempty"`
	Honesty          int       `json:"honesty"`
	VictimLikelihood int       `json:"victimLikelihood"`
	KillerLikelihood int       `json:"killerLikelihood"`
	Faction          string    `json:"faction,omitempty"`
	District         string    `json:"district,omitempty"`
	Allies           []string  `json:"allies,omitempty"`
	Enemies          []string  `json:"enemies,omitempty"`
	Items            []string  `json:"items,omitempty"`
}

type Location struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	District        string   `json:"district,omitempty"`
	OwningFaction   string   `json:"owningFaction,omitempty"`
	KeyCharacters   []string `json:"keyCharacters,omitempty"`
	AssociatedItems []string `json:"associatedItems,omitempty"`
	Clues           []string `json:"clues,omitempty"`
}

type Item struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Description         string        `json:"description,omitempty"`
	PossibleMeans       bool          `json:"possibleMeans"`
	PossibleMotive      bool          `json:"possibleMotive"`
	PossibleOpportunity bool          `json:"possibleOpportunity"`
	CluePotential       CluePotential `json:"cluePotential,omitempty"`
	Value               string        `json:"value,omitempty"`
	Condition           string        `json:"condition,omitempty"`
	DefaultLocation     string        `json:"defaultLocation,omitempty"`
	DefaultOwner        string        `json:"defaultOwner,omitempty"`
}

type Faction struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Headquarters  string   `json:"headquarters,omitempty"`
	Members       []string `json:"members,omitempty"`
	AllyFactions  []string `json:"allyFactions,omitempty"`
	EnemyFactions []string `json:"enemyFactions,omitempty"`
}

type District struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	DominantFaction string   `json:"dominantFaction,omitempty"`
	KeyLocations    []string `json:"keyLocations,omitempty"`
}

// Sleuth is the investigator the player controls. A world has at most one.
type Sleuth struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city,omitempty"`
	Biography   string    `json:"biography,omitempty"`
	WealthClass string    `json:"wealthClass,omitempty"`
	Archetype   string    `json:"archetype,omitempty"`
	Personality string    `json:"personality,omitempty"`
	Alignment   Alignment `json:"alignment,omitempty"`
	District    string    `json:"district,omitempty"`
	Nemesis     string    `json:"nemesis,omitempty"`
}
