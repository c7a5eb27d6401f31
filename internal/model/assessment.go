package model

import "encoding/json"

// Category is one of the four dimensions a question measures.
type Category string

const (
	CategoryGod       Category = "God"
	CategoryOthers    Category = "Others"
	CategoryDisciples Category = "Disciples"
	CategorySin       Category = "Sin"
)

// Stage is the ordered classification of a person's spiritual maturity,
// from least to most mature.
type Stage string

const (
	StageSeeking     Stage = "Seeking"
	StageBeginning   Stage = "Beginning"
	StageGrowing     Stage = "Growing"
	StageMultiplying Stage = "Multiplying"
)

func (s Stage) Valid() bool {
	switch s {
	case StageSeeking, StageBeginning, StageGrowing, StageMultiplying:
		return true
	}
	return false
}

type AttributeType string

const (
	AttributeExperience AttributeType = "experience"
	AttributeSkill      AttributeType = "skill"
)

// CategoryScores holds the per-category score totals for one assessment.
// swagger:model CategoryScores
type CategoryScores struct {
	GodScore       int `json:"godScore"`
	OthersScore    int `json:"othersScore"`
	DisciplesScore int `json:"disciplesScore"`
	SinScore       int `json:"sinScore"`
}

// Assessment is the persisted root entity of one questionnaire submission.
// It is created exactly once at submission time and never updated.
// swagger:model Assessment
type Assessment struct {
	UUIDBase
	Email            string `gorm:"size:255;not null;index" json:"email"`
	TotalScore       int    `gorm:"not null" json:"totalScore"`
	Stage            Stage  `gorm:"type:varchar(20);not null;index" json:"stage"`
	GodScore         int    `gorm:"not null;default:0" json:"godScore"`
	OthersScore      int    `gorm:"not null;default:0" json:"othersScore"`
	DisciplesScore   int    `gorm:"not null;default:0" json:"disciplesScore"`
	SinScore         int    `gorm:"not null;default:0" json:"sinScore"`
	IsSeekerOverride bool   `gorm:"not null;default:false" json:"isSeekerOverride"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) CategoryScores() CategoryScores {
	return CategoryScores{
		GodScore:       a.GodScore,
		OthersScore:    a.OthersScore,
		DisciplesScore: a.DisciplesScore,
		SinScore:       a.SinScore,
	}
}

// AssessmentResponse records one answered question, denormalized with the
// question text and category so admin views do not depend on the catalog
// version that was live at submission time.
// swagger:model AssessmentResponse
type AssessmentResponse struct {
	UUIDBase
	AssessmentID string `gorm:"index;type:varchar(36);not null" json:"assessmentId"`
	QuestionID   int    `gorm:"not null" json:"questionId"`
	QuestionText string `gorm:"type:text" json:"questionText"`
	AnswerText   string `gorm:"type:text" json:"answerText"`
	AnswerScore  int    `gorm:"not null" json:"answerScore"`
	Category     string `gorm:"size:20" json:"category"`
}

func (AssessmentResponse) TableName() string {
	return "assessment_responses"
}

// AssessmentAttribute is a user-selected life-experience or skill tag.
// swagger:model AssessmentAttribute
type AssessmentAttribute struct {
	UUIDBase
	AssessmentID   string        `gorm:"index;type:varchar(36);not null" json:"assessmentId"`
	AttributeType  AttributeType `gorm:"type:varchar(20);not null" json:"attributeType"`
	AttributeValue string        `gorm:"size:255;not null" json:"attributeValue"`
}

func (AssessmentAttribute) TableName() string {
	return "assessment_attributes"
}

// RecommendationCategory is the display bucket of one recommendation.
type RecommendationCategory string

const (
	RecommendationCommunity RecommendationCategory = "Community"
	RecommendationResources RecommendationCategory = "Resources"
	RecommendationServing   RecommendationCategory = "Serving"
	RecommendationPractices RecommendationCategory = "Practices"
	RecommendationSupport   RecommendationCategory = "Support"
)

func (c RecommendationCategory) Valid() bool {
	switch c {
	case RecommendationCommunity, RecommendationResources, RecommendationServing,
		RecommendationPractices, RecommendationSupport:
		return true
	}
	return false
}

// Recommendation is a single generated suggestion. Priority is a soft rank
// (lower = higher priority); consumers sort ascending for display.
// swagger:model Recommendation
type Recommendation struct {
	Category    RecommendationCategory `json:"category"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Link        string                 `json:"link"`
	Priority    int                    `json:"priority"`
}

// RecommendationRecord stores the generator output for one assessment.
// At most one per assessment; absent when generation or its persistence
// failed.
// swagger:model RecommendationRecord
type RecommendationRecord struct {
	UUIDBase
	AssessmentID        string          `gorm:"uniqueIndex;type:varchar(36);not null" json:"assessmentId"`
	StageSummary        string          `gorm:"type:text" json:"stageSummary"`
	RecommendationsJSON json.RawMessage `gorm:"type:json" json:"-"`
}

func (RecommendationRecord) TableName() string {
	return "recommendation_records"
}

// Recommendations decodes the stored JSON payload. Storage order is
// whatever the generator returned.
func (r *RecommendationRecord) Recommendations() ([]Recommendation, error) {
	if len(r.RecommendationsJSON) == 0 {
		return nil, nil
	}
	var recs []Recommendation
	if err := json.Unmarshal(r.RecommendationsJSON, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
