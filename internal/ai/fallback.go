package ai

import "strings"

// fallbackDescriptions maps title keywords to canned task descriptions
// used when no language model is available. Order matters; the first
// keyword found in the title wins.
var fallbackDescriptions = []struct {
	keyword     string
	description string
}{
	{"setup", "Initialize the project structure, configure necessary dependencies, and prepare the development environment for optimal workflow."},
	{"design", "Create wireframes and mockups, define the user interface components, and establish the visual design system for consistency."},
	{"implement", "Write the core functionality, integrate required APIs, and ensure proper error handling and validation throughout the system."},
	{"test", "Develop comprehensive test cases, perform unit and integration testing, and validate all features work as expected."},
	{"deploy", "Configure production environment, set up CI/CD pipeline, and ensure the application is ready for live deployment."},
	{"review", "Conduct thorough code review, check for security vulnerabilities, and optimize performance for better user experience."},
	{"fix", "Identify and resolve bugs, address user feedback, and implement necessary improvements to enhance functionality."},
	{"optimize", "Analyze performance metrics, refactor inefficient code, and implement caching strategies for better system performance."},
	{"document", "Create comprehensive documentation, write user guides, and ensure all code is properly commented for maintainability."},
	{"meeting", "Prepare agenda items, gather necessary materials, and coordinate with team members to ensure productive discussion."},
}

// genericFallbackDescription is used when no keyword matches.
const genericFallbackDescription = "Break this task into smaller, actionable steps. Define clear success criteria and identify any dependencies or resources needed to complete this work effectively."

// FallbackDescription produces a description from the static
// keyword-to-template lookup against the lower-cased title.
func FallbackDescription(title string) string {
	lowerTitle := strings.ToLower(title)

	for _, entry := range fallbackDescriptions {
		if strings.Contains(lowerTitle, entry.keyword) {
			return entry.description
		}
	}

	return genericFallbackDescription
}
