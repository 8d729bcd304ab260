package catalog

// LessonModel a single unit of course content.
//
// Lesson definitions never carry completion state, that belongs to the
// per-user progress overlay
type LessonModel struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// CourseModel catalog course definition, lesson order is display order
type CourseModel struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Thumbnail     string         `json:"thumbnail"`
	Instructor    string         `json:"instructor"`
	TotalDuration string         `json:"total_duration"`
	Lessons       []*LessonModel `json:"lessons"`
}

// Store read-only course lookup
type Store interface {
	FindCourse(courseID string) *CourseModel
	ListCourses() []*CourseModel
}
