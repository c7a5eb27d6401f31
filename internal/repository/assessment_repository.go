package repository

import (
	"errors"
	"time"

	"mvcc_assessment_backend/internal/model"
	"mvcc_assessment_backend/internal/util"

	"gorm.io/gorm"
)

// AssessmentFilter narrows the admin listing. Zero values mean "no
// constraint". Date bounds are inclusive.
type AssessmentFilter struct {
	Stage     model.Stage
	Search    string // case-insensitive substring match on email
	StartDate *time.Time
	EndDate   *time.Time
}

// AssessmentRepository is the record-store adapter for assessments and
// their owned rows. The four inserts are intentionally separate calls:
// partial persistence (assessment saved, recommendation missing) is an
// accepted outcome, not an error state requiring rollback.
type AssessmentRepository interface {
	CreateAssessment(a *model.Assessment) error
	CreateResponses(responses []model.AssessmentResponse) error
	CreateAttributes(attributes []model.AssessmentAttribute) error
	CreateRecommendation(rec *model.RecommendationRecord) error

	FindAssessmentByID(id string) (*model.Assessment, error)
	ListAssessments(filter AssessmentFilter) ([]model.Assessment, error)
	FindResponses(assessmentID string) ([]model.AssessmentResponse, error)
	FindAttributes(assessmentID string) ([]model.AssessmentAttribute, error)
	FindRecommendation(assessmentID string) (*model.RecommendationRecord, error)
}

type assessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{DB: db}
}

func (r *assessmentRepository) CreateAssessment(a *model.Assessment) error {
	return r.DB.Create(a).Error
}

func (r *assessmentRepository) CreateResponses(responses []model.AssessmentResponse) error {
	if len(responses) == 0 {
		return nil
	}
	return r.DB.Create(&responses).Error
}

func (r *assessmentRepository) CreateAttributes(attributes []model.AssessmentAttribute) error {
	if len(attributes) == 0 {
		return nil
	}
	return r.DB.Create(&attributes).Error
}

func (r *assessmentRepository) CreateRecommendation(rec *model.RecommendationRecord) error {
	return r.DB.Create(rec).Error
}

func (r *assessmentRepository) FindAssessmentByID(id string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assessmentRepository) ListAssessments(filter AssessmentFilter) ([]model.Assessment, error) {
	query := r.DB.Model(&model.Assessment{}).Order("created_at desc")

	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.Search != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}

	var assessments []model.Assessment
	err := query.Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) FindResponses(assessmentID string) ([]model.AssessmentResponse, error) {
	var responses []model.AssessmentResponse
	err := r.DB.Where("assessment_id = ?", assessmentID).
		Order("question_id asc").
		Find(&responses).Error
	return responses, err
}

func (r *assessmentRepository) FindAttributes(assessmentID string) ([]model.AssessmentAttribute, error) {
	var attributes []model.AssessmentAttribute
	err := r.DB.Where("assessment_id = ?", assessmentID).Find(&attributes).Error
	return attributes, err
}

func (r *assessmentRepository) FindRecommendation(assessmentID string) (*model.RecommendationRecord, error) {
	var rec model.RecommendationRecord
	err := r.DB.Where("assessment_id = ?", assessmentID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRecommendationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
