package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

func loadCard(path string) (CardFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return CardFile{}, fmt.Errorf("read card file: %w", err)
	}

	var card CardFile
	if err := json.Unmarshal(raw, &card); err != nil {
		return CardFile{}, fmt.Errorf("invalid card json: %w", err)
	}

	if card.Front == "" || card.Back == "" {
		return CardFile{}, fmt.Errorf("card file must set both front and back")
	}
	return card, nil
}

// ParseTags splits a comma-separated tag list, trimming and lowercasing
// each entry and dropping empties. Returns nil for an empty input so
// the library applies its default tag.
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}

	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
