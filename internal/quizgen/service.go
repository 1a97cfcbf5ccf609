package quizgen

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ankhbayar/mcqgen/internal/llm"
)

// Service runs the generation pipeline: prompt → streamed completion →
// extraction. Stages are strictly sequential; the only suspension points are
// chunk arrivals, surfaced through the onChunk callback.
type Service struct {
	completer llm.Completer
	log       *zap.Logger
}

// NewService creates a Service. log may be nil.
func NewService(c llm.Completer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{completer: c, log: log}
}

// Result is the outcome of one generation action. ExtractErr is data, not a
// failure of the pipeline: the raw text is always retained so the caller can
// show it when extraction comes up empty.
type Result struct {
	// Problems are the extracted problems, in model output order.
	// Empty when ExtractErr is set.
	Problems []Problem

	// Raw is the full accumulated transport text.
	Raw string

	// ExtractErr is ErrNoJSONFound, a *MalformedJSONError, or nil.
	ExtractErr error
}

// Generate runs one full generation action. onChunk, when non-nil, is
// invoked for every streamed chunk in arrival order so the caller can render
// progress live. The only error return is request validation; transport
// faults surface as informational chunks and extraction faults travel in the
// Result.
func (s *Service) Generate(ctx context.Context, req Request, onChunk func(string)) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	s.log.Info("generation started",
		zap.String("request_id", id),
		zap.String("subject", string(req.Subject)),
		zap.String("topic", req.MainTopic),
		zap.String("subtopic", req.Subtopic),
		zap.String("model", s.completer.ModelID()),
		zap.Int("questions", req.QuestionCount),
		zap.Int("options", req.OptionCount),
	)

	prompt := BuildPrompt(req)

	stream := s.completer.StreamCompletion(ctx, llm.Request{
		Prompt:      prompt,
		Temperature: req.Temperature,
	})
	for chunk := range stream.Chunks() {
		if onChunk != nil {
			onChunk(chunk)
		}
	}

	raw := stream.Text()
	problems, err := ExtractProblems(raw)

	s.log.Info("generation finished",
		zap.String("request_id", id),
		zap.Int("raw_bytes", len(raw)),
		zap.Int("problems", len(problems)),
		zap.Bool("extracted", err == nil),
	)

	return &Result{
		Problems:   problems,
		Raw:        raw,
		ExtractErr: err,
	}, nil
}
