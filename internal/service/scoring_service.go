package service

import (
	"fmt"

	"mvcc_assessment_backend/internal/catalog"
	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/util"
	"mvcc_assessment_backend/pkg/logger"

	"go.uber.org/zap"
)

// QuestionResponse is one answered question in a submission. Answering is
// optional per question, so a submission carries 0..N of these.
type QuestionResponse struct {
	QuestionID int    `json:"questionId" binding:"required"`
	AnswerText string `json:"answerText" binding:"required"`
	Score      int    `json:"score"`
}

// Answer texts on the override question that force Stage=Seeking. Exact
// string match, case-sensitive, no trimming.
const (
	overrideAnswerNo     = "No"
	overrideAnswerUnsure = "I'm unsure"
)

// ValidateResponses rejects submissions carrying more than one response
// for the same question id.
func ValidateResponses(responses []QuestionResponse) error {
	seen := make(map[int]bool, len(responses))
	for _, r := range responses {
		if seen[r.QuestionID] {
			return fmt.Errorf("%w: question %d", util.ErrDuplicateResponse, r.QuestionID)
		}
		seen[r.QuestionID] = true
	}
	return nil
}

// TotalScore sums the scores of all responses.
func TotalScore(responses []QuestionResponse) int {
	total := 0
	for _, r := range responses {
		total += r.Score
	}
	return total
}

// ComputeCategoryScores partitions response scores by question category.
// A response referencing an unknown question contributes to no category;
// that indicates a data-consistency bug and is logged.
func ComputeCategoryScores(responses []QuestionResponse) model.CategoryScores {
	var scores model.CategoryScores

	for _, r := range responses {
		q, ok := catalog.QuestionByID(r.QuestionID)
		if !ok {
			logger.Log.Warn("response references unknown question",
				zap.Int("questionId", r.QuestionID))
			continue
		}
		switch q.Category {
		case model.CategoryGod:
			scores.GodScore += r.Score
		case model.CategoryOthers:
			scores.OthersScore += r.Score
		case model.CategoryDisciples:
			scores.DisciplesScore += r.Score
		case model.CategorySin:
			scores.SinScore += r.Score
		}
	}

	return scores
}

// ComputeStage maps the total score to a stage. The override question
// gates everything: answering that the person has not (or is unsure
// whether they have) decided to follow Jesus forces Seeking regardless of
// the numeric score.
func ComputeStage(totalScore int, question10Answer string) model.Stage {
	if question10Answer == overrideAnswerNo || question10Answer == overrideAnswerUnsure {
		return model.StageSeeking
	}

	if totalScore < 0 {
		return model.StageSeeking
	}
	if totalScore <= 10 {
		return model.StageBeginning
	}
	if totalScore <= 20 {
		return model.StageGrowing
	}
	return model.StageMultiplying
}

// SeekerOverride reports whether the override answer forced Seeking on
// someone whose numeric score alone would have placed them higher. Stored
// alongside the stage as a display/audit flag; it cannot be re-derived
// from the stage alone.
func SeekerOverride(totalScore int, question10Answer string) bool {
	return (question10Answer == overrideAnswerNo || question10Answer == overrideAnswerUnsure) &&
		totalScore >= 0
}

// OverrideAnswer extracts the answer text given to the override question,
// or "" when it was left unanswered.
func OverrideAnswer(responses []QuestionResponse) string {
	for _, r := range responses {
		if r.QuestionID == catalog.OverrideQuestionID {
			return r.AnswerText
		}
	}
	return ""
}
