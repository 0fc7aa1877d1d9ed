package models

// Book represents a single catalog entry. The catalog is seeded once at
// startup and never mutated afterwards.
type Book struct {
	ID          int     `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title"`
	Price       int     `json:"price"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Description string  `json:"description"`
	Featured    bool    `json:"featured"`
	Author      string  `json:"author"`
}

// SeedBooks returns the fixed catalog loaded into the book store at startup.
func SeedBooks() []Book {
	return []Book{
		{
			ID:          1,
			Title:       "HTML Basics",
			Price:       199,
			Category:    "Web Development",
			Rating:      4.5,
			Reviews:     128,
			Description: "Learn the fundamentals of HTML and build your first website",
			Featured:    true,
			Author:      "John Smith",
		},
		{
			ID:          2,
			Title:       "CSS Design",
			Price:       249,
			Category:    "Web Development",
			Rating:      4.7,
			Reviews:     95,
			Description: "Master CSS styling and create beautiful web designs",
			Featured:    true,
			Author:      "Sarah Johnson",
		},
		{
			ID:          3,
			Title:       "Docker for Beginners",
			Price:       399,
			Category:    "DevOps",
			Rating:      4.8,
			Reviews:     156,
			Description: "Complete guide to Docker containerization and deployment",
			Featured:    true,
			Author:      "Michael Chen",
		},
		{
			ID:          4,
			Title:       "Python Programming",
			Price:       299,
			Category:    "Programming",
			Rating:      4.6,
			Reviews:     112,
			Description: "Python basics to advanced concepts for all skill levels",
			Featured:    false,
			Author:      "David Brown",
		},
		{
			ID:          5,
			Title:       "JavaScript Mastery",
			Price:       349,
			Category:    "Web Development",
			Rating:      4.9,
			Reviews:     203,
			Description: "Complete JavaScript guide from ES6 to modern frameworks",
			Featured:    true,
			Author:      "Emily Davis",
		},
		{
			ID:          6,
			Title:       "Kubernetes Guide",
			Price:       449,
			Category:    "DevOps",
			Rating:      4.4,
			Reviews:     87,
			Description: "Production-ready Kubernetes deployment strategies",
			Featured:    false,
			Author:      "Robert Wilson",
		},
	}
}
