package models

// UnlockType is the kind of content a clue reveals once the player knows it.
type UnlockType string

const (
	UnlockTypeLocation          UnlockType = "location"
	UnlockTypeInterviewQuestion UnlockType = "interview_question"
)

// CaseData is the Case Graph laid over a World Graph. CaseMeta is nil until the core mystery is defined.
type CaseData struct {
	CaseMeta      *CaseMeta      `json:"caseMeta,omitempty"`
	Clues         []Clue         `json:"clues"`
	KeySuspects   []CaseSuspect  `json:"keySuspects"`
	CaseLocations []CaseLocation `json:"caseLocations"`
}

// CaseMeta defines the core mystery: who died, who did it, where and with what.
type CaseMeta struct {
	Victim                     string   `json:"victim"`
	Culprit                    string   `json:"culprit"`
	CrimeScene                 string   `json:"crimeScene"`
	MurderWeapon               string   `json:"murderWeapon"`
	CoreMysterySolutionDetails string   `json:"coreMysterySolutionDetails,omitempty"`
	MeansClue                  string   `json:"meansClue,omitempty"`
	MotiveClue                 string   `json:"motiveClue,omitempty"`
	OpportunityClue            string   `json:"opportunityClue,omitempty"`
	RedHerringClues            []string `json:"redHerringClues,omitempty"`
}

// Unlock names content that becomes available once a clue is known.
type Unlock struct {
	Type UnlockType `json:"type"`
	ID   string     `json:"id"`
}

type Clue struct {
	ClueID              string   `json:"clueId"`
	ClueSummary         string   `json:"clueSummary"`
	Source              string   `json:"source,omitempty"`
	KnowledgeLevel      string   `json:"knowledgeLevel,omitempty"`
	CriticalClue        bool     `json:"criticalClue"`
	RedHerring          bool     `json:"redHerring"`
	IsLie               bool     `json:"isLie"`
	DiscoveryPath       []string `json:"discoveryPath,omitempty"`
	Dependencies        []string `json:"dependencies,omitempty"`
	DebunkingClue       string   `json:"debunkingClue,omitempty"`
	AssociatedItem      string   `json:"associatedItem,omitempty"`
	AssociatedLocation  string   `json:"associatedLocation,omitempty"`
	AssociatedCharacter string   `json:"associatedCharacter,omitempty"`
	RevealsUnlocks      []Unlock `json:"revealsUnlocks,omitempty"`
}

// InterviewQuestion is one exchange with a suspect or witness. A lie must name the clue that debunks it.
type InterviewQuestion struct {
	QuestionID    string `json:"questionId"`
	Question      string `json:"question"`
	AnswerID      string `json:"answerId,omitempty"`
	Answer        string `json:"answer"`
	IsLie         bool   `json:"isLie"`
	IsClue        bool   `json:"isClue"`
	DebunkingClue string `json:"debunkingClue,omitempty"`
	HasItem       string `json:"hasItem,omitempty"`
}

type CaseSuspect struct {
	CharacterID string              `json:"characterId"`
	Interview   []InterviewQuestion `json:"interview"`
}

type CaseWitness struct {
	CharacterID string              `json:"characterId"`
	Interview   []InterviewQuestion `json:"interview"`
}

type CaseLocation struct {
	LocationID    string        `json:"locationId"`
	LocationClues []string      `json:"locationClues"`
	Witnesses     []CaseWitness `json:"witnesses"`
}
