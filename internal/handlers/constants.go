package handlers

const (
	SessionCookieName = "session_id"

	ErrInvalidFormData     = "Invalid form data"
	ErrUnauthorized        = "Unauthorized"
	ErrInternalServerError = "Internal server error"

	// Envelope messages shared by the game handlers
	MsgGameOver     = "The game is over!"
	MsgGameNotFound = "The game was not found!"
	MsgGameRunning  = "The game is running."
	MsgNoLives      = "You have no lives left!"
	MsgListNotFound = "The list was not found!"
	MsgListEmpty    = "The list has no words!"
	MsgLessonLocked = "The lesson is locked!"
	MsgSettleError  = "The game could not be saved!"
)
