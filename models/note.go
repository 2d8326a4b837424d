package models

// Note is the payload AnkiConnect expects under params.note for the
// addNote action.
type Note struct {
	DeckName  string      `json:"deckName"`
	ModelName string      `json:"modelName"`
	Fields    NoteFields  `json:"fields"`
	Options   NoteOptions `json:"options"`
	Tags      []string    `json:"tags"`
}

// NoteFields matches the "Basic" note type: exactly a Front and a Back.
type NoteFields struct {
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

type NoteOptions struct {
	AllowDuplicate bool `json:"allowDuplicate"`
}

// NoteOverrides carries optional replacements for the configured deck,
// model and tags. Zero values mean "use the default"; supplied values
// replace the defaults wholesale, there is no merging.
type NoteOverrides struct {
	Deck  string
	Model string
	Tags  []string
}

type AddNoteRequest struct {
	Action  string        `json:"action"`
	Version int           `json:"version"`
	Params  AddNoteParams `json:"params"`
}

type AddNoteParams struct {
	Note Note `json:"note"`
}

// AnkiResponse is whatever AnkiConnect returned, decoded but not
// interpreted. AnkiConnect reports application failures in the error
// field of a 200 response, so callers that care must check Error
// themselves.
type AnkiResponse struct {
	Result interface{} `json:"result"`
	Error  interface{} `json:"error"`
}
