package services

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/abstract-tutoring/anki-push/models"
	"github.com/abstract-tutoring/anki-push/utils"
)

const (
	DefaultAnkiConnectURL = "http://localhost:8765"
	DefaultDeck           = "Optometry Notes"
	DefaultModel          = "Basic" // or "Cloze"
	DefaultTag            = "optometry"

	addNoteAction      = "addNote"
	ankiConnectVersion = 6
)

// AnkiConnectURL returns the endpoint notes are posted to, honouring
// ANKICONNECT_URL when set.
func AnkiConnectURL() string {
	return utils.EnvOrDefault("ANKICONNECT_URL", DefaultAnkiConnectURL)
}

// BuildAddNote assembles the addNote request body for one front/back
// card. Empty override fields fall back to the package defaults; the
// default tag slice is allocated fresh on every call, so callers may
// mutate the result freely.
func BuildAddNote(front, back string, overrides models.NoteOverrides) models.AddNoteRequest {
	deck := overrides.Deck
	if deck == "" {
		deck = DefaultDeck
	}
	model := overrides.Model
	if model == "" {
		model = DefaultModel
	}
	tags := overrides.Tags
	if tags == nil {
		tags = []string{DefaultTag}
	}

	return models.AddNoteRequest{
		Action:  addNoteAction,
		Version: ankiConnectVersion,
		Params: models.AddNoteParams{
			Note: models.Note{
				DeckName:  deck,
				ModelName: model,
				Fields:    models.NoteFields{Front: front, Back: back},
				Options:   models.NoteOptions{AllowDuplicate: false},
				Tags:      tags,
			},
		},
	}
}

// AddNote posts one note to AnkiConnect and returns the decoded
// response as-is. The card text is not validated or escaped beyond
// standard JSON encoding, the HTTP status code is not checked, and the
// response's error field is not inspected; a nonexistent deck succeeds
// here and fails inside the returned payload.
func AddNote(front, back string, overrides models.NoteOverrides) (models.AnkiResponse, error) {
	body, err := json.Marshal(BuildAddNote(front, back, overrides))
	if err != nil {
		return models.AnkiResponse{}, err
	}

	resp, err := http.Post(AnkiConnectURL(), "application/json", bytes.NewReader(body))
	if err != nil {
		return models.AnkiResponse{}, err
	}
	defer resp.Body.Close()

	var decoded models.AnkiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.AnkiResponse{}, err
	}
	return decoded, nil
}
