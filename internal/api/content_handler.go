package api

import (
	"net/http"
	"sort"

	"github.com/ruankao-prep/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type ChapterResponse struct {
	Name           string `json:"name" example:"第1章 信息化发展"`
	QuestionGroups int    `json:"question_groups" example:"4"`
}

type YearGroupResponse struct {
	Year    string   `json:"year" example:"2016"`
	Batches []string `json:"batches" example:"第一批,第二批"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listChapters lists the chapter bank of a course.
// @Summary      List chapters
// @Description  Enumerate the chapter directories of a course's question bank with their group counts. Empty when the course has no chapter content.
// @Tags         Content
// @Produce      json
// @Param        courseID  path      int  true  "Course ID"
// @Success      200       {array}   ChapterResponse
// @Failure      400       {object}  map[string]string
// @Router       /courses/{courseID}/chapters [get]
func (h *Handler) listChapters(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	chapters := h.resolver.ListChapters(id)

	response := make([]ChapterResponse, len(chapters))
	for i, c := range chapters {
		response[i] = ChapterResponse{Name: c.Name, QuestionGroups: c.QuestionGroups}
	}
	respondJSON(w, http.StatusOK, response)
}

// listYearGroups lists past-exam years and batches for a category.
// @Summary      List exam years
// @Description  Enumerate the exam years and batches available for a course and category, ascending. Pass order=desc for newest-first.
// @Tags         Content
// @Produce      json
// @Param        courseID  path      int     true   "Course ID"
// @Param        category  path      string  true   "Exam category"
// @Param        order     query     string  false  "asc (default) or desc"
// @Success      200       {array}   YearGroupResponse
// @Failure      400       {object}  map[string]string
// @Router       /courses/{courseID}/categories/{category}/years [get]
func (h *Handler) listYearGroups(w http.ResponseWriter, r *http.Request) {
	id, ok := courseID(w, r)
	if !ok {
		return
	}

	category, ok := question.ParseCategory(r.PathValue("category"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown category")
		return
	}

	groups := h.resolver.ListYearGroups(id, category)

	// Display order is a caller concern; the resolver always enumerates
	// ascending by directory name.
	if r.URL.Query().Get("order") == "desc" {
		sort.Slice(groups, func(i, j int) bool { return groups[i].Year > groups[j].Year })
	}

	response := make([]YearGroupResponse, len(groups))
	for i, g := range groups {
		response[i] = YearGroupResponse{Year: g.Year, Batches: g.Batches}
	}
	respondJSON(w, http.StatusOK, response)
}
