// Package account persists the logged-in backend account between runs.
package account

import (
	"encoding/json"

	"github.com/ckarenz/bodybuddy/internal/storage"
)

// stateKey is the file name under the data dir.
const stateKey = "account.json"

// State is what survives between runs. The password never does.
type State struct {
	Username   string `json:"username"`
	VoiceModel string `json:"voice_model,omitempty"`
}

// Load reads the saved account. A missing or corrupt file reads as
// not logged in.
func Load(backend storage.Backend) (State, bool) {
	data, ok, err := backend.Read(stateKey)
	if err != nil || !ok {
		return State{}, false
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil || st.Username == "" {
		return State{}, false
	}
	return st, true
}

// Save writes the account state.
func Save(backend storage.Backend, st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return backend.Write(stateKey, data)
}
