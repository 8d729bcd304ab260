package catalog

// DefaultCourses built-in course catalog
func DefaultCourses() []*CourseModel {
	return []*CourseModel{
		{
			ID:            "1",
			Title:         "Introduction to Web Development",
			Description:   "Learn the fundamentals of HTML, CSS, and JavaScript to build modern websites from scratch.",
			Thumbnail:     "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800&h=600&fit=crop",
			Instructor:    "Sarah Johnson",
			TotalDuration: "4h 30m",
			Lessons: []*LessonModel{
				{ID: "1-1", Title: "Getting Started with HTML", Duration: "30m"},
				{ID: "1-2", Title: "CSS Fundamentals", Duration: "45m"},
				{ID: "1-3", Title: "JavaScript Basics", Duration: "1h"},
				{ID: "1-4", Title: "Building Your First Website", Duration: "1h 15m"},
				{ID: "1-5", Title: "Responsive Design Principles", Duration: "1h"},
			},
		},
		{
			ID:            "2",
			Title:         "React for Beginners",
			Description:   "Master React and build interactive user interfaces with components, hooks, and state management.",
			Thumbnail:     "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=800&h=600&fit=crop",
			Instructor:    "Mike Chen",
			TotalDuration: "6h 15m",
			Lessons: []*LessonModel{
				{ID: "2-1", Title: "Introduction to React", Duration: "45m"},
				{ID: "2-2", Title: "Components and Props", Duration: "1h"},
				{ID: "2-3", Title: "State and Lifecycle", Duration: "1h 15m"},
				{ID: "2-4", Title: "Hooks Deep Dive", Duration: "1h 30m"},
				{ID: "2-5", Title: "Building a Real Project", Duration: "1h 45m"},
			},
		},
		{
			ID:            "3",
			Title:         "Python Programming Masterclass",
			Description:   "From basics to advanced concepts, become proficient in Python programming and automation.",
			Thumbnail:     "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?w=800&h=600&fit=crop",
			Instructor:    "David Martinez",
			TotalDuration: "8h 45m",
			Lessons: []*LessonModel{
				{ID: "3-1", Title: "Python Fundamentals", Duration: "1h"},
				{ID: "3-2", Title: "Data Structures", Duration: "1h 30m"},
				{ID: "3-3", Title: "Object-Oriented Programming", Duration: "2h"},
				{ID: "3-4", Title: "Working with Files and APIs", Duration: "1h 45m"},
				{ID: "3-5", Title: "Advanced Python Techniques", Duration: "2h 30m"},
			},
		},
		{
			ID:            "4",
			Title:         "UI/UX Design Fundamentals",
			Description:   "Learn design principles, user research, prototyping, and create beautiful user experiences.",
			Thumbnail:     "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800&h=600&fit=crop",
			Instructor:    "Emma Wilson",
			TotalDuration: "5h 20m",
			Lessons: []*LessonModel{
				{ID: "4-1", Title: "Design Principles", Duration: "50m"},
				{ID: "4-2", Title: "User Research Methods", Duration: "1h 10m"},
				{ID: "4-3", Title: "Wireframing and Prototyping", Duration: "1h 20m"},
				{ID: "4-4", Title: "Visual Design", Duration: "1h"},
				{ID: "4-5", Title: "Usability Testing", Duration: "1h"},
			},
		},
		{
			ID:            "5",
			Title:         "Data Science with Python",
			Description:   "Explore data analysis, visualization, and machine learning using Python libraries.",
			Thumbnail:     "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800&h=600&fit=crop",
			Instructor:    "Alex Thompson",
			TotalDuration: "10h",
			Lessons: []*LessonModel{
				{ID: "5-1", Title: "Introduction to Data Science", Duration: "1h"},
				{ID: "5-2", Title: "NumPy and Pandas", Duration: "2h"},
				{ID: "5-3", Title: "Data Visualization", Duration: "1h 30m"},
				{ID: "5-4", Title: "Statistical Analysis", Duration: "2h"},
				{ID: "5-5", Title: "Machine Learning Basics", Duration: "3h 30m"},
			},
		},
		{
			ID:            "6",
			Title:         "Mobile App Development",
			Description:   "Build native mobile applications for iOS and Android using modern frameworks.",
			Thumbnail:     "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?w=800&h=600&fit=crop",
			Instructor:    "Rachel Kim",
			TotalDuration: "7h 30m",
			Lessons: []*LessonModel{
				{ID: "6-1", Title: "Mobile Development Overview", Duration: "45m"},
				{ID: "6-2", Title: "Setting Up Development Environment", Duration: "1h"},
				{ID: "6-3", Title: "Building UI Components", Duration: "2h"},
				{ID: "6-4", Title: "Navigation and Routing", Duration: "1h 30m"},
				{ID: "6-5", Title: "Publishing Your App", Duration: "2h 15m"},
			},
		},
	}
}
