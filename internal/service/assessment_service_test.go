package service

import (
	"context"
	"testing"

	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/repository"
	"mvcc_assessment_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAssessmentRepository keeps everything in memory and assigns IDs the
// way the record store would.
type fakeAssessmentRepository struct {
	assessments     map[string]*model.Assessment
	responses       map[string][]model.AssessmentResponse
	attributes      map[string][]model.AssessmentAttribute
	recommendations map[string]*model.RecommendationRecord
}

func newFakeRepository() *fakeAssessmentRepository {
	return &fakeAssessmentRepository{
		assessments:     make(map[string]*model.Assessment),
		responses:       make(map[string][]model.AssessmentResponse),
		attributes:      make(map[string][]model.AssessmentAttribute),
		recommendations: make(map[string]*model.RecommendationRecord),
	}
}

func (f *fakeAssessmentRepository) CreateAssessment(a *model.Assessment) error {
	if a.ID == "" {
		a.ID = model.GenerateUUID()
	}
	f.assessments[a.ID] = a
	return nil
}

func (f *fakeAssessmentRepository) CreateResponses(responses []model.AssessmentResponse) error {
	for _, r := range responses {
		f.responses[r.AssessmentID] = append(f.responses[r.AssessmentID], r)
	}
	return nil
}

func (f *fakeAssessmentRepository) CreateAttributes(attributes []model.AssessmentAttribute) error {
	for _, a := range attributes {
		f.attributes[a.AssessmentID] = append(f.attributes[a.AssessmentID], a)
	}
	return nil
}

func (f *fakeAssessmentRepository) CreateRecommendation(rec *model.RecommendationRecord) error {
	f.recommendations[rec.AssessmentID] = rec
	return nil
}

func (f *fakeAssessmentRepository) FindAssessmentByID(id string) (*model.Assessment, error) {
	a, ok := f.assessments[id]
	if !ok {
		return nil, util.ErrAssessmentNotFound
	}
	return a, nil
}

func (f *fakeAssessmentRepository) ListAssessments(filter repository.AssessmentFilter) ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range f.assessments {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAssessmentRepository) FindResponses(assessmentID string) ([]model.AssessmentResponse, error) {
	return f.responses[assessmentID], nil
}

func (f *fakeAssessmentRepository) FindAttributes(assessmentID string) ([]model.AssessmentAttribute, error) {
	return f.attributes[assessmentID], nil
}

func (f *fakeAssessmentRepository) FindRecommendation(assessmentID string) (*model.RecommendationRecord, error) {
	rec, ok := f.recommendations[assessmentID]
	if !ok {
		return nil, util.ErrRecommendationNotFound
	}
	return rec, nil
}

func submitRequest() SubmitAssessmentRequest {
	return SubmitAssessmentRequest{
		Email: "person@example.com",
		Responses: []QuestionResponse{
			{QuestionID: 1, AnswerText: "4+ times/week", Score: 2},
			{QuestionID: 2, AnswerText: "Yes", Score: 2},
			{QuestionID: 10, AnswerText: "Yes", Score: 2},
		},
		Experiences: []string{"You are dealing with grief/loss"},
		Skills:      []string{"Teaching"},
	}
}

func newTestService(repo repository.AssessmentRepository, gen Generator) *AssessmentService {
	return NewAssessmentService(repo, NewRecommendationService(gen), nil, 0)
}

func TestSubmitPersistsAssessmentTree(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &stubGenerator{reply: validReply})

	result, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)
	require.NotEmpty(t, result.AssessmentID)

	assert.Equal(t, model.StageBeginning, result.Stage)
	assert.True(t, result.RecommendationsAvailable)
	assert.Equal(t, "You are at the beginning of an exciting journey.", result.StageSummary)
	assert.Len(t, result.Recommendations, 2)

	a := repo.assessments[result.AssessmentID]
	require.NotNil(t, a)
	assert.Equal(t, "person@example.com", a.Email)
	assert.Equal(t, 6, a.TotalScore)
	assert.Equal(t, model.StageBeginning, a.Stage)
	assert.False(t, a.IsSeekerOverride)
	assert.Equal(t, a.TotalScore, a.GodScore+a.OthersScore+a.DisciplesScore+a.SinScore)

	responses := repo.responses[result.AssessmentID]
	require.Len(t, responses, 3)
	assert.Equal(t, "I read/study the Bible to grow in my faith.", responses[0].QuestionText)
	assert.Equal(t, string(model.CategoryDisciples), responses[0].Category)

	attributes := repo.attributes[result.AssessmentID]
	require.Len(t, attributes, 2)
	assert.Equal(t, model.AttributeExperience, attributes[0].AttributeType)
	assert.Equal(t, model.AttributeSkill, attributes[1].AttributeType)

	rec := repo.recommendations[result.AssessmentID]
	require.NotNil(t, rec)
	stored, err := rec.Recommendations()
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestSubmitSeekerOverride(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &stubGenerator{reply: validReply})

	req := submitRequest()
	req.Responses[2] = QuestionResponse{QuestionID: 10, AnswerText: "No", Score: -2}

	result, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.StageSeeking, result.Stage)
	assert.True(t, repo.assessments[result.AssessmentID].IsSeekerOverride)
}

func TestSubmitSurvivesGeneratorFailure(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &stubGenerator{err: util.ErrGenerationTimeout})

	result, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	assert.False(t, result.RecommendationsAvailable)
	assert.Empty(t, result.StageSummary)
	assert.Empty(t, result.Recommendations)

	// Assessment and responses are persisted, recommendation is not.
	require.NotNil(t, repo.assessments[result.AssessmentID])
	assert.Len(t, repo.responses[result.AssessmentID], 3)
	assert.Nil(t, repo.recommendations[result.AssessmentID])
}

func TestSubmitRejectsDuplicateResponses(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &stubGenerator{reply: validReply})

	req := submitRequest()
	req.Responses = append(req.Responses, QuestionResponse{QuestionID: 1, AnswerText: "Never", Score: -1})

	_, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, util.ErrDuplicateResponse)
	assert.Empty(t, repo.assessments)
}

func TestGetAssessmentDetail(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &stubGenerator{reply: validReply})

	submitted, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	detail, err := svc.GetAssessmentDetail(context.Background(), submitted.AssessmentID)
	require.NoError(t, err)

	assert.Equal(t, submitted.AssessmentID, detail.ID)
	assert.Len(t, detail.Responses, 3)
	assert.Len(t, detail.Attributes, 2)
	require.NotNil(t, detail.Recommendation)
	assert.Len(t, detail.Recommendation.Recommendations, 2)
}

func TestGetAssessmentDetailNotFound(t *testing.T) {
	svc := newTestService(newFakeRepository(), &stubGenerator{reply: validReply})

	_, err := svc.GetAssessmentDetail(context.Background(), "missing")
	assert.ErrorIs(t, err, util.ErrAssessmentNotFound)
}

func TestGetResultsGroupsAndSorts(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &stubGenerator{reply: `{
		"stage_summary": "summary",
		"recommendations": [
			{"category": "Practices", "title": "Prayer", "description": "d", "link": "https://mvccfrederick.com", "priority": 2},
			{"category": "Community", "title": "Groups", "description": "d", "link": "https://example.com/groups", "priority": 3},
			{"category": "Community", "title": "Rooted", "description": "d", "link": "https://example.com/rooted", "priority": 1},
			{"category": "Support", "title": "GriefShare", "description": "d", "link": "https://example.com/griefshare", "priority": 1}
		]
	}`})

	submitted, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	view, err := svc.GetResults(context.Background(), submitted.AssessmentID)
	require.NoError(t, err)

	assert.True(t, view.RecommendationsAvailable)
	assert.Equal(t, "summary", view.StageSummary)

	// Display order: Community, Resources, Serving, Practices, Support;
	// empty categories are skipped.
	require.Len(t, view.Groups, 3)
	assert.Equal(t, model.RecommendationCommunity, view.Groups[0].Category)
	assert.Equal(t, model.RecommendationPractices, view.Groups[1].Category)
	assert.Equal(t, model.RecommendationSupport, view.Groups[2].Category)

	community := view.Groups[0].Recommendations
	require.Len(t, community, 2)
	assert.Equal(t, "Rooted", community[0].Title)
	assert.Equal(t, "Groups", community[1].Title)
}

func TestGetResultsWithoutRecommendation(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, &stubGenerator{err: util.ErrGenerationFormat})

	submitted, err := svc.Submit(context.Background(), submitRequest())
	require.NoError(t, err)

	view, err := svc.GetResults(context.Background(), submitted.AssessmentID)
	require.NoError(t, err)

	assert.False(t, view.RecommendationsAvailable)
	assert.Empty(t, view.StageSummary)
	assert.Empty(t, view.Groups)
}
