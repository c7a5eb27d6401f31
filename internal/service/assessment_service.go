package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"mvcc_assessment_backend/internal/catalog"
	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/repository"
	"mvcc_assessment_backend/internal/util"
	"mvcc_assessment_backend/pkg/logger"
	"mvcc_assessment_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const detailCacheKeyPrefix = "assessment:detail:"

// AssessmentService orchestrates a submission: score, generate, persist,
// and the read paths for results and admin views.
type AssessmentService struct {
	Repo        repository.AssessmentRepository
	Recommender *RecommendationService
	Redis       *redis.Client // nil means cache off
	CacheTTL    time.Duration
}

func NewAssessmentService(repo repository.AssessmentRepository, recommender *RecommendationService, rdb *redis.Client, cacheTTL time.Duration) *AssessmentService {
	return &AssessmentService{
		Repo:        repo,
		Recommender: recommender,
		Redis:       rdb,
		CacheTTL:    cacheTTL,
	}
}

type SubmitAssessmentRequest struct {
	Email       string             `json:"email" binding:"required,email"`
	Responses   []QuestionResponse `json:"responses" binding:"required"`
	Experiences []string           `json:"experiences"`
	Skills      []string           `json:"skills"`
}

// SubmitAssessmentResponse is returned for every accepted submission.
// When the generator failed, RecommendationsAvailable is false and the
// summary and list are empty; the assessment itself is still persisted.
type SubmitAssessmentResponse struct {
	AssessmentID             string                 `json:"assessmentId"`
	Stage                    model.Stage            `json:"stage"`
	StageSummary             string                 `json:"stageSummary"`
	Recommendations          []model.Recommendation `json:"recommendations"`
	RecommendationsAvailable bool                   `json:"recommendationsAvailable"`
}

// Submit scores the responses, calls the generator once, and persists the
// assessment tree. The assessment insert is the only fatal persistence
// step; responses, attributes, and the recommendation record are written
// best effort. A generator failure degrades to "assessment saved,
// recommendations unavailable".
func (s *AssessmentService) Submit(ctx context.Context, req SubmitAssessmentRequest) (*SubmitAssessmentResponse, error) {
	if err := ValidateResponses(req.Responses); err != nil {
		return nil, err
	}

	totalScore := TotalScore(req.Responses)
	overrideAnswer := OverrideAnswer(req.Responses)
	stage := ComputeStage(totalScore, overrideAnswer)
	isSeekerOverride := SeekerOverride(totalScore, overrideAnswer)
	categoryScores := ComputeCategoryScores(req.Responses)

	generation, genErr := s.generate(ctx, req, stage, totalScore, categoryScores, isSeekerOverride)

	assessment := &model.Assessment{
		Email:            req.Email,
		TotalScore:       totalScore,
		Stage:            stage,
		GodScore:         categoryScores.GodScore,
		OthersScore:      categoryScores.OthersScore,
		DisciplesScore:   categoryScores.DisciplesScore,
		SinScore:         categoryScores.SinScore,
		IsSeekerOverride: isSeekerOverride,
	}

	if err := s.Repo.CreateAssessment(assessment); err != nil {
		return nil, err
	}

	s.persistResponses(assessment.ID, req.Responses)
	s.persistAttributes(assessment.ID, req.Experiences, req.Skills)

	result := &SubmitAssessmentResponse{
		AssessmentID:    assessment.ID,
		Stage:           stage,
		Recommendations: []model.Recommendation{},
	}

	if genErr == nil {
		if err := s.persistRecommendation(assessment.ID, generation); err != nil {
			logger.Log.Error("recommendation insert failed",
				zap.String("assessmentId", assessment.ID),
				zap.Error(err))
		}
		result.StageSummary = generation.StageSummary
		result.Recommendations = generation.Recommendations
		result.RecommendationsAvailable = true
	}

	monitoring.SubmissionCounter.WithLabelValues(string(stage)).Inc()
	logger.Log.Info("assessment submitted",
		zap.String("assessmentId", assessment.ID),
		zap.String("stage", string(stage)),
		zap.Int("totalScore", totalScore),
		zap.Bool("recommendationsAvailable", result.RecommendationsAvailable))

	return result, nil
}

func (s *AssessmentService) generate(ctx context.Context, req SubmitAssessmentRequest, stage model.Stage, totalScore int, categoryScores model.CategoryScores, isSeekerOverride bool) (*GenerationResult, error) {
	start := time.Now()
	generation, err := s.Recommender.Generate(ctx, GenerationInput{
		Email:            req.Email,
		Stage:            stage,
		TotalScore:       totalScore,
		CategoryScores:   categoryScores,
		IsSeekerOverride: isSeekerOverride,
		Responses:        req.Responses,
		Experiences:      req.Experiences,
		Skills:           req.Skills,
	})
	monitoring.GenerationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		monitoring.GenerationFailureCounter.WithLabelValues(generationFailureReason(err)).Inc()
		logger.Log.Error("recommendation generation failed", zap.Error(err))
	}
	return generation, err
}

func generationFailureReason(err error) string {
	switch {
	case errors.Is(err, util.ErrGenerationFormat):
		return "format"
	case errors.Is(err, util.ErrGenerationParse):
		return "parse"
	case errors.Is(err, util.ErrGenerationTimeout):
		return "timeout"
	default:
		return "transport"
	}
}

func (s *AssessmentService) persistResponses(assessmentID string, responses []QuestionResponse) {
	records := make([]model.AssessmentResponse, 0, len(responses))
	for _, r := range responses {
		questionText := ""
		category := ""
		if q, ok := catalog.QuestionByID(r.QuestionID); ok {
			questionText = q.Text
			category = string(q.Category)
		}
		records = append(records, model.AssessmentResponse{
			AssessmentID: assessmentID,
			QuestionID:   r.QuestionID,
			QuestionText: questionText,
			AnswerText:   r.AnswerText,
			AnswerScore:  r.Score,
			Category:     category,
		})
	}

	if err := s.Repo.CreateResponses(records); err != nil {
		logger.Log.Error("responses insert failed",
			zap.String("assessmentId", assessmentID),
			zap.Error(err))
	}
}

func (s *AssessmentService) persistAttributes(assessmentID string, experiences, skills []string) {
	records := make([]model.AssessmentAttribute, 0, len(experiences)+len(skills))
	for _, exp := range experiences {
		records = append(records, model.AssessmentAttribute{
			AssessmentID:   assessmentID,
			AttributeType:  model.AttributeExperience,
			AttributeValue: exp,
		})
	}
	for _, skill := range skills {
		records = append(records, model.AssessmentAttribute{
			AssessmentID:   assessmentID,
			AttributeType:  model.AttributeSkill,
			AttributeValue: skill,
		})
	}

	if err := s.Repo.CreateAttributes(records); err != nil {
		logger.Log.Error("attributes insert failed",
			zap.String("assessmentId", assessmentID),
			zap.Error(err))
	}
}

func (s *AssessmentService) persistRecommendation(assessmentID string, generation *GenerationResult) error {
	// Stored in generator order; display surfaces re-sort by priority.
	payload, err := json.Marshal(generation.Recommendations)
	if err != nil {
		return err
	}
	return s.Repo.CreateRecommendation(&model.RecommendationRecord{
		AssessmentID:        assessmentID,
		StageSummary:        generation.StageSummary,
		RecommendationsJSON: payload,
	})
}

// AssessmentDetail is the full admin view of one assessment.
// swagger:model AssessmentDetail
type AssessmentDetail struct {
	model.Assessment
	Responses      []model.AssessmentResponse  `json:"responses"`
	Attributes     []model.AssessmentAttribute `json:"attributes"`
	Recommendation *RecommendationView         `json:"recommendation"`
}

// RecommendationView is the decoded recommendation record.
type RecommendationView struct {
	StageSummary    string                 `json:"stageSummary"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// GetAssessmentDetail loads an assessment with its owned rows, through
// the read cache when one is configured.
func (s *AssessmentService) GetAssessmentDetail(ctx context.Context, id string) (*AssessmentDetail, error) {
	if cached := s.cachedDetail(ctx, id); cached != nil {
		return cached, nil
	}

	assessment, err := s.Repo.FindAssessmentByID(id)
	if err != nil {
		return nil, err
	}

	responses, err := s.Repo.FindResponses(id)
	if err != nil {
		return nil, err
	}

	attributes, err := s.Repo.FindAttributes(id)
	if err != nil {
		return nil, err
	}

	detail := &AssessmentDetail{
		Assessment: *assessment,
		Responses:  responses,
		Attributes: attributes,
	}

	record, err := s.Repo.FindRecommendation(id)
	switch {
	case err == nil:
		recs, decodeErr := record.Recommendations()
		if decodeErr != nil {
			logger.Log.Error("stored recommendations are unreadable",
				zap.String("assessmentId", id),
				zap.Error(decodeErr))
		} else {
			detail.Recommendation = &RecommendationView{
				StageSummary:    record.StageSummary,
				Recommendations: recs,
			}
		}
	case errors.Is(err, util.ErrRecommendationNotFound):
		// Accepted outcome: generation failed at submission time.
	default:
		return nil, err
	}

	s.cacheDetail(ctx, id, detail)
	return detail, nil
}

func (s *AssessmentService) cachedDetail(ctx context.Context, id string) *AssessmentDetail {
	if s.Redis == nil {
		return nil
	}
	val, err := s.Redis.Get(ctx, detailCacheKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		logger.Log.Warn("detail cache read failed", zap.Error(err))
		return nil
	}
	var detail AssessmentDetail
	if err := json.Unmarshal([]byte(val), &detail); err != nil {
		return nil
	}
	return &detail
}

func (s *AssessmentService) cacheDetail(ctx context.Context, id string, detail *AssessmentDetail) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, detailCacheKeyPrefix+id, payload, s.CacheTTL).Err(); err != nil {
		logger.Log.Warn("detail cache write failed", zap.Error(err))
	}
}

// ListAssessments returns admin summaries, newest first.
func (s *AssessmentService) ListAssessments(filter repository.AssessmentFilter) ([]model.Assessment, error) {
	return s.Repo.ListAssessments(filter)
}

// RecommendationGroup is one display bucket of the results view, already
// sorted ascending by priority.
type RecommendationGroup struct {
	Category        model.RecommendationCategory `json:"category"`
	Recommendations []model.Recommendation       `json:"recommendations"`
}

// ResultsView is the participant-facing read model.
// swagger:model ResultsView
type ResultsView struct {
	AssessmentID             string                `json:"assessmentId"`
	Stage                    model.Stage           `json:"stage"`
	IsSeekerOverride         bool                  `json:"isSeekerOverride"`
	StageSummary             string                `json:"stageSummary"`
	RecommendationsAvailable bool                  `json:"recommendationsAvailable"`
	Groups                   []RecommendationGroup `json:"groups"`
}

var groupOrder = []model.RecommendationCategory{
	model.RecommendationCommunity,
	model.RecommendationResources,
	model.RecommendationServing,
	model.RecommendationPractices,
	model.RecommendationSupport,
}

// GetResults groups the stored recommendations by category, sorted
// ascending by priority within each group. An assessment without a
// recommendation record still renders, marked unavailable.
func (s *AssessmentService) GetResults(ctx context.Context, id string) (*ResultsView, error) {
	detail, err := s.GetAssessmentDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &ResultsView{
		AssessmentID:     detail.ID,
		Stage:            detail.Stage,
		IsSeekerOverride: detail.IsSeekerOverride,
		Groups:           []RecommendationGroup{},
	}

	if detail.Recommendation == nil {
		return view, nil
	}

	view.StageSummary = detail.Recommendation.StageSummary
	view.RecommendationsAvailable = true

	byCategory := make(map[model.RecommendationCategory][]model.Recommendation)
	for _, rec := range detail.Recommendation.Recommendations {
		byCategory[rec.Category] = append(byCategory[rec.Category], rec)
	}

	for _, category := range groupOrder {
		recs := byCategory[category]
		if len(recs) == 0 {
			continue
		}
		sort.SliceStable(recs, func(i, j int) bool {
			return recs[i].Priority < recs[j].Priority
		})
		view.Groups = append(view.Groups, RecommendationGroup{
			Category:        category,
			Recommendations: recs,
		})
	}

	return view, nil
}
