package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/acrolab/acrolex/pkg/recognize"
	"github.com/acrolab/acrolex/pkg/score"
)

// Server handles the IPC for shortform recognition.
type Server struct {
	recognizers map[string]recognize.Recognizer
	window      int
	scorerOn    bool
	params      score.Params
	reader      *bufio.Reader
	writer      io.Writer
}

// NewServer creates a recognition server using stdin/stdout for IPC.
// recognizers maps shortforms to their dictionary-backed recognizers;
// shortforms not present fall back to one-shot recognition when enabled.
func NewServer(recognizers map[string]recognize.Recognizer, window int, scorerOn bool, params score.Params) *Server {
	if recognizers == nil {
		recognizers = make(map[string]recognize.Recognizer)
	}
	return &Server{
		recognizers: recognizers,
		window:      window,
		scorerOn:    scorerOn,
		params:      params,
		reader:      bufio.NewReader(os.Stdin),
		writer:      os.Stdout,
	}
}

// Start begins listening for IPC requests until stdin closes.
func (s *Server) Start() error {
	log.Debug("Starting recognition server.")
	s.sendResponse(map[string]string{"status": "ready"})

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Reading from stdin: %v", err)
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.handleRequest(line)
	}
}

func (s *Server) handleRequest(requestStr string) {
	var request Request
	if err := json.Unmarshal([]byte(requestStr), &request); err != nil {
		s.sendError("Invalid JSON request", 400)
		log.Errorf("Unmarshaling request: %v", err)
		return
	}

	switch request.Command {
	case "recognize":
		s.handleRecognize(request)
	case "strip":
		s.handleStrip(request)
	case "health":
		s.sendResponse(map[string]string{"status": "ok"})
	default:
		s.sendError(fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// recognizerFor resolves the recognizer for a shortform, building a
// one-shot fallback when no dictionary is loaded for it.
func (s *Server) recognizerFor(shortform string) (recognize.Recognizer, error) {
	if r, ok := s.recognizers[shortform]; ok {
		return r, nil
	}
	if !s.scorerOn {
		return nil, fmt.Errorf("no dictionary loaded for shortform %q", shortform)
	}
	r, err := recognize.NewOneShotRecognizer(shortform, s.window, s.params)
	if err != nil {
		return nil, err
	}
	s.recognizers[shortform] = r
	return r, nil
}

func (s *Server) handleRecognize(request Request) {
	rec, ok := s.validate(request)
	if !ok {
		return
	}

	start := time.Now()
	results := rec.Recognize(request.Text)
	elapsed := time.Since(start)

	wire := make([]ResponseResult, len(results))
	for i, r := range results {
		wire[i] = ResponseResult{
			Longform:  r.Longform,
			Text:      r.LongformText,
			Grounding: r.Grounding,
			Score:     r.Score,
		}
	}
	s.sendResponse(RecognitionResponse{
		Results:   wire,
		Count:     len(wire),
		Shortform: request.Shortform,
		TimeTaken: elapsed.Milliseconds(),
	})
}

func (s *Server) handleStrip(request Request) {
	rec, ok := s.validate(request)
	if !ok {
		return
	}

	start := time.Now()
	stripped := rec.StripDefiningPatterns(request.Text)
	elapsed := time.Since(start)

	s.sendResponse(StripResponse{
		Text:      stripped,
		Shortform: request.Shortform,
		TimeTaken: elapsed.Milliseconds(),
	})
}

func (s *Server) validate(request Request) (recognize.Recognizer, bool) {
	if request.Shortform == "" {
		s.sendError("Missing 'shortform' parameter", 400)
		return nil, false
	}
	if request.Text == "" {
		s.sendError("Missing 'text' parameter", 400)
		return nil, false
	}
	rec, err := s.recognizerFor(request.Shortform)
	if err != nil {
		s.sendError(err.Error(), 404)
		log.Debugf("No recognizer for %s: %v", request.Shortform, err)
		return nil, false
	}
	return rec, true
}

func (s *Server) sendResponse(response interface{}) {
	data, err := json.Marshal(response)
	if err != nil {
		log.Errorf("Marshaling response: %v", err)
		s.sendError("Internal server error", 500)
		return
	}
	fmt.Fprintln(s.writer, string(data))
}

func (s *Server) sendError(message string, code int) {
	s.sendResponse(ErrorResponse{Error: message, Status: code})
}
