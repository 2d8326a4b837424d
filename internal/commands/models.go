package commands

// CardFile is the on-disk shape accepted by the add-file command: one
// card per file. Deck, model and tags are optional and default the same
// way the library defaults them.
type CardFile struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Deck  string   `json:"deck,omitempty"`
	Model string   `json:"model,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}
