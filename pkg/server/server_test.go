package server

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/acrolab/acrolex/pkg/dictionary"
	"github.com/acrolab/acrolex/pkg/recognize"
	"github.com/acrolab/acrolex/pkg/score"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	rec, err := recognize.NewExactRecognizer("SC", dictionary.GroundingMap{"stem cell": "G1"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	srv := NewServer(map[string]recognize.Recognizer{"SC": rec}, 100, false, score.Params{})
	srv.writer = &buf
	return srv, &buf
}

func TestHandleRecognize(t *testing.T) {
	srv, buf := newTestServer(t)
	srv.handleRequest(`{"command":"recognize","shortform":"SC","text":"stem cells (SC) divide"}`)

	var resp RecognitionResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v (%s)", err, buf.String())
	}
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1", resp.Count)
	}
	if resp.Results[0].Longform != "stem cell" || resp.Results[0].Grounding != "G1" {
		t.Errorf("result = %+v", resp.Results[0])
	}
	if resp.Results[0].Text != "stem cells" {
		t.Errorf("surface text = %q", resp.Results[0].Text)
	}
}

func TestHandleStrip(t *testing.T) {
	srv, buf := newTestServer(t)
	srv.handleRequest(`{"command":"strip","shortform":"SC","text":"stem cells (SC) divide"}`)

	var resp StripResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v (%s)", err, buf.String())
	}
	if resp.Text != "SC divide" {
		t.Errorf("stripped text = %q, want %q", resp.Text, "SC divide")
	}
}

func TestHandleHealth(t *testing.T) {
	srv, buf := newTestServer(t)
	srv.handleRequest(`{"command":"health"}`)
	if got := buf.String(); got != "{\"status\":\"ok\"}\n" {
		t.Errorf("health response = %q", got)
	}
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name    string
		request string
		status  int
	}{
		{"invalid json", `not json`, 400},
		{"unknown command", `{"command":"bogus","shortform":"SC","text":"x"}`, 400},
		{"missing shortform", `{"command":"recognize","text":"x"}`, 400},
		{"missing text", `{"command":"recognize","shortform":"SC"}`, 400},
		{"unknown shortform no fallback", `{"command":"recognize","shortform":"XYZ","text":"x (XYZ)"}`, 404},
	}
	for _, tc := range tests {
		srv, buf := newTestServer(t)
		srv.handleRequest(tc.request)

		var resp ErrorResponse
		if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decoding response: %v (%s)", tc.name, err, buf.String())
		}
		if resp.Status != tc.status {
			t.Errorf("%s: status = %d, want %d", tc.name, resp.Status, tc.status)
		}
	}
}

func TestOneShotFallback(t *testing.T) {
	if !score.Available() {
		t.Skip("alignment scorer not compiled in")
	}
	var buf bytes.Buffer
	srv := NewServer(nil, 100, true, score.Params{})
	srv.writer = &buf

	srv.handleRequest(`{"command":"recognize","shortform":"IPSC","text":"induced pluripotent stem cells (IPSC) lines"}`)

	var resp RecognitionResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v (%s)", err, buf.String())
	}
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1 (%s)", resp.Count, buf.String())
	}
	if resp.Results[0].Longform != "induced pluripotent stem cells" {
		t.Errorf("longform = %q", resp.Results[0].Longform)
	}
	if resp.Results[0].Score <= 0 {
		t.Errorf("score = %v, want > 0", resp.Results[0].Score)
	}
}
