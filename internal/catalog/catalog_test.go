package catalog

import "testing"

func TestFindCourse(t *testing.T) {
	store := NewInMemoryStore(DefaultCourses())

	course := store.FindCourse("1")
	if course == nil {
		t.Fatal("course 1 should exist")
	}
	if course.Title != "Introduction to Web Development" {
		t.Fatalf("unexpected title: %s", course.Title)
	}
	if store.FindCourse("999") != nil {
		t.Fatal("unknown course should return nil")
	}
}

func TestListCoursesOrder(t *testing.T) {
	courses := []*CourseModel{
		{ID: "b", Title: "Second"},
		{ID: "a", Title: "First"},
	}
	store := NewInMemoryStore(courses)

	listed := store.ListCourses()
	if len(listed) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(listed))
	}
	if listed[0].ID != "b" || listed[1].ID != "a" {
		t.Fatal("courses must keep registration order")
	}
}

func TestDefaultCoursesIntegrity(t *testing.T) {
	courses := DefaultCourses()
	if len(courses) != 6 {
		t.Fatalf("expected 6 built-in courses, got %d", len(courses))
	}

	seenCourse := make(map[string]bool)
	for _, course := range courses {
		if seenCourse[course.ID] {
			t.Fatalf("duplicated course id %s", course.ID)
		}
		seenCourse[course.ID] = true

		if len(course.Lessons) == 0 {
			t.Fatalf("course %s has no lessons", course.ID)
		}
		seenLesson := make(map[string]bool)
		for _, lesson := range course.Lessons {
			if seenLesson[lesson.ID] {
				t.Fatalf("duplicated lesson id %s in course %s", lesson.ID, course.ID)
			}
			seenLesson[lesson.ID] = true
			if lesson.Title == "" || lesson.Duration == "" {
				t.Fatalf("lesson %s in course %s is missing fields", lesson.ID, course.ID)
			}
		}
	}
}
