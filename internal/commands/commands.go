package commands

import (
	"fmt"
	"log"

	"github.com/abstract-tutoring/anki-push/models"
	"github.com/abstract-tutoring/anki-push/services"
)

// AddCard pushes a single note to AnkiConnect. Unless allowHTML is set,
// front and back are run through the card sanitiser first. Application
// failures reported in the response's error field (unknown deck,
// duplicate note, ...) are surfaced as errors here, even though the
// library itself passes them through.
func AddCard(front, back, deck, model string, tags []string, allowHTML bool) error {
	if !allowHTML {
		var err error
		if front, err = services.SanitiseCardText(front); err != nil {
			return fmt.Errorf("front: %w", err)
		}
		if back, err = services.SanitiseCardText(back); err != nil {
			return fmt.Errorf("back: %w", err)
		}
	}

	resp, err := services.AddNote(front, back, models.NoteOverrides{
		Deck:  deck,
		Model: model,
		Tags:  tags,
	})
	if err != nil {
		return fmt.Errorf("post note: %w", err)
	}

	if resp.Error != nil {
		return fmt.Errorf("ankiconnect: %v", resp.Error)
	}

	log.Printf("added note %v", resp.Result)
	return nil
}

// AddCardFromFile reads one card from a JSON file and pushes it.
func AddCardFromFile(path string, allowHTML bool) error {
	card, err := loadCard(path)
	if err != nil {
		return err
	}
	return AddCard(card.Front, card.Back, card.Deck, card.Model, card.Tags, allowHTML)
}
