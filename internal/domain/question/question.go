package question

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Category is an exam section type. The values are the fixed vocabulary
// used by the content pipeline as directory names.
type Category string

const (
	CategoryComprehensive Category = "综合知识"
	CategoryCaseStudy     Category = "案例题"
	CategoryEssay         Category = "论文"
)

// Categories returns all exam categories in display order.
func Categories() []Category {
	return []Category{CategoryComprehensive, CategoryCaseStudy, CategoryEssay}
}

// ParseCategory validates a category string against the fixed vocabulary.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryComprehensive, CategoryCaseStudy, CategoryEssay:
		return Category(s), true
	}
	return "", false
}

// OptionText is an answer option that tolerates sloppy source encoding:
// it decodes a JSON string as-is, renders a JSON number as its decimal
// text, and degrades anything else to the empty string instead of
// failing the containing record.
type OptionText string

func (t *OptionText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = OptionText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = OptionText(n.String())
		return nil
	}
	*t = ""
	return nil
}

// Question is a single multiple-choice question as it appears in a
// question-set file. Immutable once loaded.
type Question struct {
	ID             string     `json:"_id"`
	CourseID       int        `json:"course_id"`
	NumericID      int        `json:"id"`
	Seq            int        `json:"seq"`
	TestID         string     `json:"test_id"`
	Type           int        `json:"type"`
	Area           int        `json:"area"`
	Stem           string     `json:"tigan"`
	OptionA        OptionText `json:"A"`
	OptionB        OptionText `json:"B"`
	OptionC        OptionText `json:"C"`
	OptionD        OptionText `json:"D"`
	Answer         string     `json:"answer"`
	Explanation    string     `json:"explanation"`
	StemPic        string     `json:"tigan_pic"`
	ExplanationPic string     `json:"explanation_pic"`
}

// StemPicURL resolves the stem image reference against the CDN base.
// Returns "" when the question has no stem image.
func (q Question) StemPicURL(base string) string {
	return picURL(base, q.CourseID, q.StemPic)
}

// ExplanationPicURL resolves the explanation image reference against the
// CDN base. Returns "" when the question has no explanation image.
func (q Question) ExplanationPicURL(base string) string {
	return picURL(base, q.CourseID, q.ExplanationPic)
}

func picURL(base string, courseID int, ref string) string {
	if base == "" || ref == "" {
		return ""
	}
	return fmt.Sprintf("%s/%d/%s", strings.TrimSuffix(base, "/"), courseID, ref)
}

// Envelope is the exact on-disk shape of a question-set file:
// { success, data: { errCode, errMsg, data: [Question...] } }.
// Externally produced content packages depend on this shape.
type Envelope struct {
	Success bool    `json:"success"`
	Data    Payload `json:"data"`
}

// Payload is the inner envelope of a question-set file.
type Payload struct {
	ErrCode int        `json:"errCode"`
	ErrMsg  string     `json:"errMsg"`
	Data    []Question `json:"data"`
}

// DecodeSet reads one question-set file and returns its questions in
// file order.
func DecodeSet(r io.Reader) ([]Question, error) {
	var env Envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode question set: %w", err)
	}
	return env.Data.Data, nil
}
