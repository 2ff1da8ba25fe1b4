package resume

var roleSuggestions = map[string][]string{
	"Frontend Developer": {
		"Include experience with modern JavaScript frameworks (React, Vue, Angular)",
		"Highlight responsive design and CSS expertise",
		"Mention experience with version control (Git)",
		"Add projects that demonstrate UI/UX skills",
		"Include performance optimization experience",
	},
	"Backend Developer": {
		"Emphasize database design and management skills",
		"Include API development and integration experience",
		"Mention cloud platform experience (AWS, Azure, GCP)",
		"Add microservices and scalability experience",
		"Include testing and CI/CD pipeline knowledge",
	},
	"Full Stack Developer": {
		"Balance frontend and backend technologies",
		"Mention experience with complete project lifecycle",
		"Include database and API design skills",
		"Add deployment and DevOps experience",
		"Emphasize problem-solving and system design abilities",
	},
	"Software Developer": {
		"Include programming languages relevant to target companies",
		"Mention software development lifecycle experience",
		"Add problem-solving and algorithmic thinking examples",
		"Include collaborative development and code review experience",
		"Emphasize continuous learning and adaptation",
	},
	"Data Scientist": {
		"Include statistical analysis and machine learning experience",
		"Mention data visualization and storytelling skills",
		"Add experience with Python, R, or similar languages",
		"Include big data and cloud computing experience",
		"Emphasize business impact of data insights",
	},
}

var genericSuggestions = []string{
	"Tailor your resume to the specific job requirements",
	"Include quantifiable achievements and metrics",
	"Use action verbs to describe your responsibilities",
	"Keep your resume concise and well-formatted",
	"Include relevant keywords from the job description",
}

// Suggestions returns role-specific resume advice, falling back to the
// generic list for unknown roles.
func Suggestions(jobRole string) []string {
	if s, ok := roleSuggestions[jobRole]; ok {
		return s
	}
	return genericSuggestions
}
