package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/google/uuid"
)

func TestCoachHandler_Ask(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		mockService    *MockCoachService
		wantStatusCode int
		wantFallback   bool
	}{
		{
			name:           "reply",
			body:           `{"message": "How can I focus better?"}`,
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "fallback is still a success",
			body: `{"message": "Hello"}`,
			mockService: &MockCoachService{
				askFunc: func(ctx context.Context, id uuid.UUID, req *domain.CoachRequest) (*domain.CoachReply, error) {
					return &domain.CoachReply{Reply: "Coach is unavailable.", Fallback: true}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantFallback:   true,
		},
		{
			name:           "missing message",
			body:           `{}`,
			mockService:    &MockCoachService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "blank message",
			body: `{"message": "   "}`,
			mockService: &MockCoachService{
				askFunc: func(ctx context.Context, id uuid.UUID, req *domain.CoachRequest) (*domain.CoachReply, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := withUserID(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), userID)

			NewCoachHandler(tt.mockService).Ask(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if rec.Code == http.StatusOK {
				var reply domain.CoachReply
				if err := json.NewDecoder(rec.Body).Decode(&reply); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if reply.Fallback != tt.wantFallback || reply.Reply == "" {
					t.Errorf("unexpected reply: %+v", reply)
				}
			}
		})
	}
}

func TestCoachHandler_Feedback(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{"recorded", `{"traceId": "t-1", "score": 5, "comment": "great"}`, http.StatusNoContent},
		{"score out of range", `{"traceId": "t-1", "score": 9}`, http.StatusUnprocessableEntity},
		{"missing trace", `{"score": 3}`, http.StatusUnprocessableEntity},
		{"invalid JSON", `nope`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.CoachFeedbackRequest
			svc := &MockCoachService{
				feedbackFunc: func(ctx context.Context, id uuid.UUID, req *domain.CoachFeedbackRequest) error {
					got = req
					return nil
				},
			}
			rec := httptest.NewRecorder()
			NewCoachHandler(svc).Feedback(rec, withUserID(httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body)), userID))

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if rec.Code == http.StatusNoContent && (got == nil || got.TraceID != "t-1") {
				t.Errorf("service not called with the request: %+v", got)
			}
		})
	}
}
