package catalog

import (
	"strings"
	"testing"

	"mvcc_assessment_backend/internal/model"
)

func TestQuestionsIntegrity(t *testing.T) {
	if len(Questions) != 16 {
		t.Fatalf("got %d questions, want 16", len(Questions))
	}

	seen := make(map[int]bool)
	for _, q := range Questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true

		if q.Text == "" {
			t.Fatalf("question %d has empty text", q.ID)
		}
		switch q.Category {
		case model.CategoryGod, model.CategoryOthers, model.CategoryDisciples, model.CategorySin:
		default:
			t.Fatalf("question %d has unknown category %q", q.ID, q.Category)
		}
		if len(q.Answers) < 2 {
			t.Fatalf("question %d has %d answers", q.ID, len(q.Answers))
		}
		for _, a := range q.Answers {
			if a.Text == "" {
				t.Fatalf("question %d has an answer with empty text", q.ID)
			}
		}
	}

	// IDs are the contiguous range 1..16.
	for id := 1; id <= 16; id++ {
		if !seen[id] {
			t.Fatalf("missing question id %d", id)
		}
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID(1)
	if !ok {
		t.Fatal("question 1 not found")
	}
	if q.Text != "I read/study the Bible to grow in my faith." {
		t.Fatalf("question 1 text = %q", q.Text)
	}

	if _, ok := QuestionByID(99); ok {
		t.Fatal("found nonexistent question 99")
	}
}

func TestOverrideQuestionAnswers(t *testing.T) {
	q, ok := QuestionByID(OverrideQuestionID)
	if !ok {
		t.Fatal("override question not found")
	}
	if q.Category != model.CategoryGod {
		t.Fatalf("override question category = %q", q.Category)
	}

	want := map[string]int{"No": -2, "I'm unsure": 0, "Yes": 2}
	if len(q.Answers) != len(want) {
		t.Fatalf("override question has %d answers", len(q.Answers))
	}
	for _, a := range q.Answers {
		score, ok := want[a.Text]
		if !ok {
			t.Fatalf("unexpected override answer %q", a.Text)
		}
		if a.Score != score {
			t.Fatalf("answer %q score = %d, want %d", a.Text, a.Score, score)
		}
	}
}

func TestResourcesIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Resources {
		if seen[r.ID] {
			t.Fatalf("duplicate resource id %q", r.ID)
		}
		seen[r.ID] = true

		if r.Name == "" || r.Description == "" || r.Category == "" {
			t.Fatalf("resource %q has empty fields", r.ID)
		}
		if !strings.HasPrefix(r.Link, "https://") {
			t.Fatalf("resource %q link = %q", r.ID, r.Link)
		}
	}
}

func TestResourcesForPrompt(t *testing.T) {
	rendered := ResourcesForPrompt()

	// Category sections appear in first-occurrence order.
	nextSteps := strings.Index(rendered, "### Next Steps")
	if nextSteps < 0 {
		t.Fatal("missing Next Steps section")
	}
	for _, r := range Resources {
		if !strings.Contains(rendered, "- **"+r.Name+"**: ") {
			t.Fatalf("missing resource %q", r.Name)
		}
		if !strings.Contains(rendered, "("+r.Link+")") {
			t.Fatalf("missing link for %q", r.Name)
		}
	}
}

func TestAttributeCatalogs(t *testing.T) {
	for _, list := range [][]string{Experiences, Skills} {
		if len(list) == 0 {
			t.Fatal("empty attribute catalog")
		}
		seen := make(map[string]bool)
		for _, v := range list {
			if v == "" {
				t.Fatal("empty attribute value")
			}
			if seen[v] {
				t.Fatalf("duplicate attribute %q", v)
			}
			seen[v] = true
		}
	}
}

func TestSpiritualPractices(t *testing.T) {
	if len(SpiritualPractices) == 0 {
		t.Fatal("no spiritual practices")
	}
	for _, p := range SpiritualPractices {
		if p.Name == "" || p.Description == "" {
			t.Fatalf("practice %q has empty fields", p.ID)
		}
	}
}
