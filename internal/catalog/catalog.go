package catalog

// InMemoryStore ...
//
// Courses are registered once at construction and never mutated afterwards,
// so lookups need no locking
type InMemoryStore struct {
	courses []*CourseModel
	index   map[string]*CourseModel
}

var _ Store = &InMemoryStore{}

// NewInMemoryStore create a store from the given course definitions
func NewInMemoryStore(courses []*CourseModel) *InMemoryStore {
	index := make(map[string]*CourseModel, len(courses))
	for _, course := range courses {
		index[course.ID] = course
	}
	return &InMemoryStore{
		courses: courses,
		index:   index,
	}
}

// FindCourse lookup course by ID, returns nil if no course matches
func (cs *InMemoryStore) FindCourse(courseID string) *CourseModel {
	return cs.index[courseID]
}

// ListCourses returns courses in registration order
func (cs *InMemoryStore) ListCourses() []*CourseModel {
	return cs.courses
}
