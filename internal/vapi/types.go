package vapi

import "time"

// Customer identifies the person being called.
type Customer struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

// CreateCallRequest is the payload for placing an outbound call.
type CreateCallRequest struct {
	AssistantID   string   `json:"assistantId"`
	PhoneNumberID string   `json:"phoneNumberId"`
	Customer      Customer `json:"customer"`
}

// Artifact holds call artifacts attached by the provider after the call ends.
type Artifact struct {
	RecordingURL string `json:"recordingUrl,omitempty"`
}

// Analysis holds the provider's post-call analysis.
type Analysis struct {
	Summary string `json:"summary,omitempty"`
}

// CallStatusEnded is the provider's terminal call status. Once a call reports
// this status its transcript and artifacts are as complete as they will get.
const CallStatusEnded = "ended"

// Call is the provider's call object. Parsed fields cover what the backend
// consumes; Raw keeps the full payload for opaque persistence.
type Call struct {
	ID                 string     `json:"id"`
	AssistantID        string     `json:"assistantId"`
	PhoneNumberID      string     `json:"phoneNumberId"`
	Type               string     `json:"type"`
	Status             string     `json:"status"`
	PhoneCallProvider  string     `json:"phoneCallProvider"`
	PhoneCallTransport string     `json:"phoneCallTransport"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	StartedAt          *time.Time `json:"startedAt,omitempty"`
	EndedAt            *time.Time `json:"endedAt,omitempty"`
	Transcript         string     `json:"transcript,omitempty"`
	RecordingURL       string     `json:"recordingUrl,omitempty"`
	Summary            string     `json:"summary,omitempty"`
	EndedReason        string     `json:"endedReason,omitempty"`
	Artifact           *Artifact  `json:"artifact,omitempty"`
	Analysis           *Analysis  `json:"analysis,omitempty"`

	Raw map[string]interface{} `json:"-"`
}

// Ended reports whether the call has reached the provider's terminal status.
func (c *Call) Ended() bool {
	return c.Status == CallStatusEnded
}

// ResolveRecordingURL returns the top-level recording URL, falling back to the
// nested artifact field. Empty string means no recording is available.
func (c *Call) ResolveRecordingURL() string {
	if c.RecordingURL != "" {
		return c.RecordingURL
	}
	if c.Artifact != nil {
		return c.Artifact.RecordingURL
	}
	return ""
}

// ResolveSummary returns the top-level summary, falling back to the nested
// analysis field. Empty string means no summary is available.
func (c *Call) ResolveSummary() string {
	if c.Summary != "" {
		return c.Summary
	}
	if c.Analysis != nil {
		return c.Analysis.Summary
	}
	return ""
}
