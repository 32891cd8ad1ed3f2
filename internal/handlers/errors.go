package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"wordquest/internal/game"
)

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		log.Printf("%s: %v", logMsg, err)
	}

	respondJSON(w, status, map[string]string{"error": userMsg})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// respondEnvelope writes a game envelope. Refusal and not-found codes
// ride on a 200 transport status; a terminal or settlement-error
// envelope sets the matching HTTP status as well.
func respondEnvelope(w http.ResponseWriter, env game.Envelope) {
	status := http.StatusOK
	switch env.Code {
	case game.CodeFinished:
		status = http.StatusCreated
	case game.CodeError:
		status = http.StatusInternalServerError
	}
	respondJSON(w, status, env)
}
