package game

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is bumped whenever any engine's stored state shape
// changes. Decoding rejects envelopes from other versions so a deploy
// never has to interpret a stale layout.
const SchemaVersion = 1

// ErrStaleState is returned when stored state was written by a
// different schema version
var ErrStaleState = fmt.Errorf("game state schema mismatch")

type stateEnvelope struct {
	V     int             `json:"v"`
	Kind  string          `json:"kind"`
	State json.RawMessage `json:"state"`
}

var constructors = map[string]func() Session{
	KindFallingWord:  func() Session { return &FallingWord{} },
	KindHangman:      func() Session { return &Hangman{} },
	KindMemory:       func() Session { return &Memory{} },
	KindMemowordrize: func() Session { return &Memowordrize{} },
	KindQuiz:         func() Session { return &Quiz{} },
	KindSnake:        func() Session { return &Snake{} },
	KindTypeFast:     func() Session { return &TypeFast{} },
}

// Encode serializes a session with its kind and schema version
func Encode(s Session) ([]byte, error) {
	state, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s state: %w", s.Kind(), err)
	}
	return json.Marshal(stateEnvelope{V: SchemaVersion, Kind: s.Kind(), State: state})
}

// Decode restores a session from its stored form. It fails on unknown
// kinds and on schema version mismatches.
func Decode(data []byte) (Session, error) {
	var env stateEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode state envelope: %w", err)
	}
	if env.V != SchemaVersion {
		return nil, ErrStaleState
	}
	build, ok := constructors[env.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown game kind %q", env.Kind)
	}
	s := build()
	if err := json.Unmarshal(env.State, s); err != nil {
		return nil, fmt.Errorf("failed to decode %s state: %w", env.Kind, err)
	}
	return s, nil
}
