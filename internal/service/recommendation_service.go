package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"mvcc_assessment_backend/internal/catalog"
	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/util"
	"mvcc_assessment_backend/pkg/logger"

	"go.uber.org/zap"
)

// RecommendationService packages assessment data into one generator
// prompt and validates the free-form reply into the recommendation
// schema before anything downstream trusts it.
type RecommendationService struct {
	Generator Generator
}

func NewRecommendationService(generator Generator) *RecommendationService {
	return &RecommendationService{Generator: generator}
}

// GenerationInput is everything the prompt is rendered from.
type GenerationInput struct {
	Email            string
	Stage            model.Stage
	TotalScore       int
	CategoryScores   model.CategoryScores
	IsSeekerOverride bool
	Responses        []QuestionResponse
	Experiences      []string
	Skills           []string
}

// GenerationResult is the validated generator output.
type GenerationResult struct {
	StageSummary    string
	Recommendations []model.Recommendation
}

// Generate makes exactly one generator call and parses the reply.
// Structurally invalid replies are never retried; that indicates a
// prompt/model mismatch, not a transient fault.
func (s *RecommendationService) Generate(ctx context.Context, input GenerationInput) (*GenerationResult, error) {
	prompt := BuildPrompt(input)

	reply, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseGeneratorReply(reply)
}

// BuildPrompt renders the pastoral-counselor prompt: assessment results,
// the literal answers (the generator reasons from the text, not the
// scores), selected attribute tags, the resource catalog, and the output
// format and tone instructions.
func BuildPrompt(input GenerationInput) string {
	var responses strings.Builder
	for i, r := range input.Responses {
		questionText := ""
		if q, ok := catalog.QuestionByID(r.QuestionID); ok {
			questionText = q.Text
		}
		if i > 0 {
			responses.WriteString("\n")
		}
		fmt.Fprintf(&responses, "Q%d: %q - Answer: %q", r.QuestionID, questionText, r.AnswerText)
	}

	overrideNote := ""
	if input.IsSeekerOverride {
		overrideNote = "**Note:** This person indicated they have not yet made a decision to follow Jesus or are unsure.\n"
	}

	var practices strings.Builder
	for _, p := range catalog.SpiritualPractices {
		fmt.Fprintf(&practices, "- **%s**: %s\n", p.Name, p.Description)
	}

	return fmt.Sprintf(`You are a pastoral counselor for Mountain View Community Church (MVCC) in Frederick, Maryland. Based on this person's spiritual assessment, provide personalized recommendations for their next steps in faith.

## Person's Assessment Results

**Email:** %s
**Spiritual Stage:** %s
**Total Score:** %d
%s
**Category Scores:**
- Relationship with God: %d
- Relationship with Others: %d
- Discipleship Practices: %d
- Understanding of Sin: %d

**Question Responses:**
%s

**Life Experiences:** %s
**Skills/Passions:** %s

## Available MVCC Resources
%s
### Spiritual Practices
Practices carry no dedicated page; use https://mvccfrederick.com as the link when recommending one.
%s
## Instructions

Provide 4-8 specific, prioritized recommendations. For each:
1. Select from the available MVCC resources list (don't invent resources that don't exist)
2. Explain WHY this resource fits their current stage and responses
3. Make it personal and encouraging, not generic
4. If they selected life experiences (like grief, divorce, etc.), prioritize relevant support resources
5. If they selected skills/passions, include relevant serving opportunities
6. If they are in the Seeking stage, prioritize welcoming, low-pressure opportunities to explore faith

Format as JSON:
{
  "stage_summary": "2-3 sentence encouraging description of where they are in their spiritual journey",
  "recommendations": [
    {
      "category": "Community|Resources|Serving|Practices|Support",
      "title": "Resource name exactly as listed",
      "description": "2-3 sentence personalized explanation of why this fits them. Reference their actual answers.",
      "link": "URL from the resources list",
      "priority": 1-5 (1 = highest priority)
    }
  ]
}

Tone Guidelines:
- Warm and pastoral, like a caring friend
- Encouraging, not prescriptive ("You might enjoy..." not "You must...")
- Grace-filled approach to growth areas
- Reference their specific answers when explaining recommendations
- If they're in the Seeking stage, be especially welcoming and non-judgmental`,
		input.Email,
		input.Stage,
		input.TotalScore,
		overrideNote,
		input.CategoryScores.GodScore,
		input.CategoryScores.OthersScore,
		input.CategoryScores.DisciplesScore,
		input.CategoryScores.SinScore,
		responses.String(),
		joinOrNone(input.Experiences),
		joinOrNone(input.Skills),
		catalog.ResourcesForPrompt(),
		practices.String(),
	)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None selected"
	}
	return strings.Join(values, ", ")
}

// generatorReply mirrors the JSON object shape requested from the model.
// Elements stay raw so one malformed entry cannot sink the whole array.
type generatorReply struct {
	StageSummary    *string           `json:"stage_summary"`
	Recommendations []json.RawMessage `json:"recommendations"`
}

type candidateRecommendation struct {
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Priority    float64 `json:"priority"`
}

// ParseGeneratorReply extracts and validates the JSON object expected
// somewhere inside the model's free-form reply. This is an untrusted
// input boundary: every field is checked against the recommendation
// schema before it is accepted. Non-conforming elements are dropped; the
// parse fails only when nothing usable remains.
func ParseGeneratorReply(reply string) (*GenerationResult, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, util.ErrGenerationFormat
	}

	var parsed generatorReply
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrGenerationParse, err)
	}

	if parsed.StageSummary == nil {
		return nil, fmt.Errorf("%w: missing stage_summary", util.ErrGenerationParse)
	}
	if parsed.Recommendations == nil {
		return nil, fmt.Errorf("%w: missing recommendations", util.ErrGenerationParse)
	}

	recommendations := make([]model.Recommendation, 0, len(parsed.Recommendations))
	for _, raw := range parsed.Recommendations {
		var c candidateRecommendation
		if err := json.Unmarshal(raw, &c); err != nil {
			logger.Log.Warn("dropping malformed recommendation element", zap.Error(err))
			continue
		}

		category := model.RecommendationCategory(c.Category)
		if !category.Valid() || c.Title == "" || c.Description == "" || c.Link == "" {
			logger.Log.Warn("dropping non-conforming recommendation element",
				zap.String("category", c.Category),
				zap.String("title", c.Title))
			continue
		}

		recommendations = append(recommendations, model.Recommendation{
			Category:    category,
			Title:       c.Title,
			Description: c.Description,
			Link:        c.Link,
			Priority:    int(c.Priority),
		})
	}

	if len(recommendations) == 0 {
		return nil, fmt.Errorf("%w: no usable recommendations", util.ErrGenerationParse)
	}

	return &GenerationResult{
		StageSummary:    *parsed.StageSummary,
		Recommendations: recommendations,
	}, nil
}
