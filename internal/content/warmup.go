package content

import (
	"github.com/ruankao-prep/backend/internal/domain/question"
	"github.com/ruankao-prep/backend/internal/worker"
)

// WarmUp pre-decodes the given question sets on a small worker pool so
// the first interactive load does not pay the parse cost of a large
// bundle file. Returns the number of sets loaded successfully.
func (r *Resolver) WarmUp(locators []Locator, workers int) int {
	if len(locators) == 0 {
		return 0
	}
	if workers <= 0 {
		workers = 2
	}

	pool := worker.NewPool[error](workers, len(locators))
	for _, loc := range locators {
		pool.Submit(loc.CacheKey(), func() error {
			_, err := r.LoadQuestions(loc)
			return err
		})
	}
	pool.Close()

	loaded := 0
	for range locators {
		res := <-pool.Results()
		if res.Output != nil {
			r.logger.Warn("warm-up load failed", "locator", res.JobID, "error", res.Output)
			continue
		}
		loaded++
	}
	return loaded
}

// WarmCourse enumerates every exam paper and chapter group of a course
// and pre-decodes them all.
func (r *Resolver) WarmCourse(courseID, workers int) int {
	var locators []Locator
	for _, cat := range question.Categories() {
		for _, yg := range r.ListYearGroups(courseID, cat) {
			for _, batch := range yg.Batches {
				locators = append(locators, ExamLocator{
					CourseID: courseID,
					Category: cat,
					Year:     yg.Year,
					Batch:    batch,
				})
			}
		}
	}
	for _, ch := range r.ListChapters(courseID) {
		for g := 1; g <= ch.QuestionGroups; g++ {
			locators = append(locators, ChapterLocator{
				CourseID: courseID,
				Chapter:  ch.Name,
				Group:    g,
			})
		}
	}
	return r.WarmUp(locators, workers)
}
