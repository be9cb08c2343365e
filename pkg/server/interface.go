/*
Package server implements JSON IPC for shortform recognition services.

The server provides a minimal request/response interface over
stdin/stdout so text-mining pipelines and editor integrations can call
the recognizers without linking Go code.

Each request carries a command, a shortform and the text to process:

	{"command": "recognize", "shortform": "SC", "text": "Stem cells (SC) ..."}

The server responds with one result per recognized defining pattern,
plus timing info:

	{"results": [{"longform": "stem cells", "text": "Stem cells", "grounding": "MESH:D013234"}], "count": 1, "time_ms": 0}

The strip command returns the text with defining patterns removed:

	{"command": "strip", "shortform": "SC", "text": "Stem cells (SC) differentiate."}
	{"text": "SC differentiate.", "time_ms": 0}

Requests for shortforms without a loaded dictionary fall back to the
one-shot recognizer when the alignment capability is present, and fail
with status 404 otherwise.
*/
package server

// Request is an incoming IPC request.
type Request struct {
	Command   string `json:"command"`
	Shortform string `json:"shortform"`
	Text      string `json:"text"`
}

// ResponseResult is the wire form of one recognition result.
type ResponseResult struct {
	Longform  string  `json:"longform"`
	Text      string  `json:"text"`
	Grounding string  `json:"grounding,omitempty"`
	Score     float64 `json:"score,omitempty"`
}

// RecognitionResponse answers a recognize command.
type RecognitionResponse struct {
	Results   []ResponseResult `json:"results"`
	Count     int              `json:"count"`
	Shortform string           `json:"shortform"`
	TimeTaken int64            `json:"time_ms"`
}

// StripResponse answers a strip command.
type StripResponse struct {
	Text      string `json:"text"`
	Shortform string `json:"shortform"`
	TimeTaken int64  `json:"time_ms"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}
