package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/util"
)

// stubGenerator returns a canned reply or error.
type stubGenerator struct {
	reply string
	err   error

	lastPrompt string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

const validReply = `Here are my recommendations for this person.

{
  "stage_summary": "You are at the beginning of an exciting journey.",
  "recommendations": [
    {"category": "Community", "title": "Groups", "description": "A place to belong.", "link": "https://mvccfrederick.com/groups", "priority": 2},
    {"category": "Practices", "title": "Daily Bible Reading", "description": "Start with the Gospel of John.", "link": "https://mvccfrederick.com", "priority": 1}
  ]
}

I hope this helps!`

func testInput() GenerationInput {
	return GenerationInput{
		Email:      "person@example.com",
		Stage:      model.StageBeginning,
		TotalScore: 4,
		CategoryScores: model.CategoryScores{
			GodScore:       2,
			DisciplesScore: 2,
		},
		Responses: []QuestionResponse{
			{QuestionID: 1, AnswerText: "4+ times/week", Score: 2},
			{QuestionID: 10, AnswerText: "Yes", Score: 2},
		},
	}
}

func TestGenerateParsesValidReply(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	svc := NewRecommendationService(gen)

	result, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.StageSummary != "You are at the beginning of an exciting journey." {
		t.Fatalf("stage summary = %q", result.StageSummary)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(result.Recommendations))
	}
	// Storage order is generator order, not priority order.
	if result.Recommendations[0].Title != "Groups" {
		t.Fatalf("first recommendation = %q", result.Recommendations[0].Title)
	}
}

func TestGeneratePromptContents(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	svc := NewRecommendationService(gen)

	input := testInput()
	input.Experiences = []string{"You are dealing with grief/loss"}

	if _, err := svc.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	prompt := gen.lastPrompt
	for _, want := range []string{
		"**Spiritual Stage:** Beginning",
		"**Total Score:** 4",
		`Q1: "I read/study the Bible to grow in my faith." - Answer: "4+ times/week"`,
		`Q10: "I have made a decision to become a follower of Jesus." - Answer: "Yes"`,
		"You are dealing with grief/loss",
		"**Skills/Passions:** None selected",
		"**GriefShare**",
		"Format as JSON",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}

	if strings.Contains(prompt, "**Note:** This person indicated") {
		t.Fatal("seeker override note rendered without override")
	}
}

func TestGeneratePromptOverrideNote(t *testing.T) {
	gen := &stubGenerator{reply: validReply}
	svc := NewRecommendationService(gen)

	input := testInput()
	input.Stage = model.StageSeeking
	input.IsSeekerOverride = true

	if _, err := svc.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(gen.lastPrompt, "**Note:** This person indicated they have not yet made a decision") {
		t.Fatal("prompt missing seeker override note")
	}
}

func TestGeneratePropagatesGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: util.ErrGenerationTimeout}
	svc := NewRecommendationService(gen)

	_, err := svc.Generate(context.Background(), testInput())
	if !errors.Is(err, util.ErrGenerationTimeout) {
		t.Fatalf("err=%v, want ErrGenerationTimeout", err)
	}
}

func TestParseGeneratorReplyNoJSON(t *testing.T) {
	_, err := ParseGeneratorReply("I am sorry, I cannot produce recommendations today.")
	if !errors.Is(err, util.ErrGenerationFormat) {
		t.Fatalf("err=%v, want ErrGenerationFormat", err)
	}
}

func TestParseGeneratorReplyInvalidJSON(t *testing.T) {
	_, err := ParseGeneratorReply(`{"stage_summary": "hello", "recommendations": [}`)
	if !errors.Is(err, util.ErrGenerationParse) {
		t.Fatalf("err=%v, want ErrGenerationParse", err)
	}
}

func TestParseGeneratorReplyMissingFields(t *testing.T) {
	cases := []string{
		`{"recommendations": []}`,
		`{"stage_summary": "hello"}`,
	}
	for _, reply := range cases {
		if _, err := ParseGeneratorReply(reply); !errors.Is(err, util.ErrGenerationParse) {
			t.Fatalf("reply %q: err=%v, want ErrGenerationParse", reply, err)
		}
	}
}

func TestParseGeneratorReplyDropsInvalidElements(t *testing.T) {
	reply := `{
		"stage_summary": "summary",
		"recommendations": [
			{"category": "Community", "title": "Groups", "description": "d", "link": "https://example.com", "priority": 1},
			{"category": "NotACategory", "title": "Bad", "description": "d", "link": "https://example.com", "priority": 1},
			{"category": "Serving", "title": "", "description": "d", "link": "https://example.com", "priority": 1},
			{"category": "Support", "title": "GriefShare", "description": "d", "link": "https://example.com", "priority": "first"},
			{"category": "Resources", "title": "MVU", "description": "d", "link": "https://example.com", "priority": 3}
		]
	}`

	result, err := ParseGeneratorReply(reply)
	if err != nil {
		t.Fatalf("ParseGeneratorReply: %v", err)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("got %d recommendations, want 2 survivors", len(result.Recommendations))
	}
	if result.Recommendations[0].Title != "Groups" || result.Recommendations[1].Title != "MVU" {
		t.Fatalf("unexpected survivors: %+v", result.Recommendations)
	}
}

func TestParseGeneratorReplyAllElementsUnusable(t *testing.T) {
	reply := `{
		"stage_summary": "summary",
		"recommendations": [
			{"category": "NotACategory", "title": "Bad", "description": "d", "link": "https://example.com", "priority": 1}
		]
	}`
	if _, err := ParseGeneratorReply(reply); !errors.Is(err, util.ErrGenerationParse) {
		t.Fatalf("err=%v, want ErrGenerationParse", err)
	}
}
