// Package catalog holds the static reference data of the assessment:
// the question catalog, the attribute catalogs (life experiences and
// skills/passions), and the resource catalog fed to the recommendation
// prompt. All tables are compiled in, immutable, and shared read-only
// across requests.
package catalog

import "mvcc_assessment_backend/internal/model"

// Answer is one choice within a question. Ordering is presentation
// order, not score order.
type Answer struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

// Question is one entry of the fixed questionnaire.
type Question struct {
	ID       int            `json:"id"`
	Text     string         `json:"text"`
	Category model.Category `json:"category"`
	Answers  []Answer       `json:"answers"`
}

// OverrideQuestionID is the distinguished question whose answer can
// force Stage=Seeking irrespective of the numeric score.
const OverrideQuestionID = 10

// Questions is the full questionnaire in presentation order.
var Questions = []Question{
	{
		ID:       1,
		Text:     "I read/study the Bible to grow in my faith.",
		Category: model.CategoryDisciples,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Occasionally", Score: -1},
			{Text: "1-3 times/week", Score: 1},
			{Text: "4+ times/week", Score: 2},
		},
	},
	{
		ID:       2,
		Text:     "I pray...",
		Category: model.CategoryDisciples,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Sometimes", Score: -1},
			{Text: "Often", Score: 1},
			{Text: "Continually and Consistently", Score: 2},
		},
	},
	{
		ID:       3,
		Text:     "I talk to others about Jesus and my faith.",
		Category: model.CategoryOthers,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Rarely", Score: -1},
			{Text: "Sometimes", Score: 1},
			{Text: "Weekly", Score: 2},
		},
	},
	{
		ID:       4,
		Text:     "I financially give to support my local church.",
		Category: model.CategoryDisciples,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Occasionally", Score: -1},
			{Text: "Regularly", Score: 1},
			{Text: "Sacrificially", Score: 2},
		},
	},
	{
		ID:       5,
		Text:     "I actively invest my time in others by serving them.",
		Category: model.CategoryOthers,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Rarely", Score: -1},
			{Text: "Sometimes", Score: 1},
			{Text: "Regularly", Score: 2},
		},
	},
	{
		ID:       6,
		Text:     "I meet with a group of other followers of Jesus outside of worship services.",
		Category: model.CategoryOthers,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Rarely", Score: -1},
			{Text: "Sometimes", Score: 1},
			{Text: "Consistently", Score: 2},
		},
	},
	{
		ID:       7,
		Text:     "When making an important decision, I seek wisdom through the Bible, prayer, and counsel.",
		Category: model.CategoryGod,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Rarely", Score: -1},
			{Text: "Sometimes", Score: 1},
			{Text: "Regularly", Score: 2},
		},
	},
	{
		ID:       8,
		Text:     "I make attending church a priority.",
		Category: model.CategoryOthers,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Less than once a month", Score: -1},
			{Text: "1-2 times/month", Score: 1},
			{Text: "More than twice/month", Score: 2},
		},
	},
	{
		ID:       9,
		Text:     "I believe my salvation depends on my good works for God.",
		Category: model.CategoryGod,
		Answers: []Answer{
			{Text: "Strongly Agree", Score: -2},
			{Text: "Agree", Score: -1},
			{Text: "Disagree", Score: 1},
			{Text: "Strongly Disagree", Score: 2},
		},
	},
	{
		ID:       10,
		Text:     "I have made a decision to become a follower of Jesus.",
		Category: model.CategoryGod,
		Answers: []Answer{
			{Text: "No", Score: -2},
			{Text: "I'm unsure", Score: 0},
			{Text: "Yes", Score: 2},
		},
	},
	{
		ID:       11,
		Text:     "I would describe my relationship with God as...",
		Category: model.CategoryGod,
		Answers: []Answer{
			{Text: "Non-existent", Score: -2},
			{Text: "Distant and cold", Score: -1},
			{Text: "Growing", Score: 1},
			{Text: "Personal and intimate", Score: 2},
		},
	},
	{
		ID:       12,
		Text:     "I know the unique roles and distinctions of God the Father, Jesus the Son, and the Holy Spirit.",
		Category: model.CategoryGod,
		Answers: []Answer{
			{Text: "Strongly Disagree", Score: -2},
			{Text: "Disagree", Score: -1},
			{Text: "Agree", Score: 1},
			{Text: "Strongly Agree", Score: 2},
		},
	},
	{
		ID:       13,
		Text:     "When I hear the word \"sin\" I think...",
		Category: model.CategorySin,
		Answers: []Answer{
			{Text: "What is that?", Score: -2},
			{Text: "It's a bit judgmental", Score: -1},
			{Text: "Something I battle daily", Score: 1},
			{Text: "Thankful it no longer defines me", Score: 2},
		},
	},
	{
		ID:       14,
		Text:     "Those who know me best would say that I show the love of Jesus in my attitude and actions.",
		Category: model.CategoryOthers,
		Answers: []Answer{
			{Text: "Never", Score: -2},
			{Text: "Rarely", Score: -1},
			{Text: "Sometimes", Score: 1},
			{Text: "Often", Score: 2},
		},
	},
	{
		ID:       15,
		Text:     "I believe I am a sinner.",
		Category: model.CategorySin,
		Answers: []Answer{
			{Text: "No", Score: -2},
			{Text: "Unsure", Score: 0},
			{Text: "Yes", Score: 2},
		},
	},
	{
		ID:       16,
		Text:     "When confronted on something I have done wrong, others would say I typically respond by...",
		Category: model.CategorySin,
		Answers: []Answer{
			{Text: "Denying any such wrong", Score: -2},
			{Text: "Getting angry or defensive", Score: -1},
			{Text: "Apologizing and seeking forgiveness", Score: 1},
			{Text: "Seeking to understand the situation to make it right", Score: 2},
		},
	},
}

var questionByID = func() map[int]*Question {
	m := make(map[int]*Question, len(Questions))
	for i := range Questions {
		m[Questions[i].ID] = &Questions[i]
	}
	return m
}()

// QuestionByID resolves a question by its catalog id.
func QuestionByID(id int) (*Question, bool) {
	q, ok := questionByID[id]
	return q, ok
}
