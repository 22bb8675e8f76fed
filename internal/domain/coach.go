package domain

// CoachRequest is a free-text question for the AI coach.
type CoachRequest struct {
	Message string `json:"message" validate:"required,max=2000" example:"Why was I slower this week?"`
}

// CoachReply is the coach answer. Fallback is true when the text generator
// failed and Reply holds the static fallback message.
// @Description AI coach reply.
type CoachReply struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
	TraceID  string `json:"traceId,omitempty"`
}

// CoachFeedbackRequest rates a previous coach reply.
type CoachFeedbackRequest struct {
	TraceID string `json:"traceId" validate:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Score   int    `json:"score" validate:"required,min=1,max=5" example:"4"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
