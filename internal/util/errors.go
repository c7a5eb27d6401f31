package util

import "errors"

var (
	ErrAssessmentNotFound     = errors.New("assessment not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrDuplicateResponse      = errors.New("duplicate response for question")

	// Generator failures. All three degrade to "assessment saved,
	// recommendations unavailable" and never block the persistence path.
	ErrGenerationFormat  = errors.New("generator reply contains no JSON object")
	ErrGenerationParse   = errors.New("generator reply could not be parsed")
	ErrGenerationTimeout = errors.New("generator call timed out")
)
