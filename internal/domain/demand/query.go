package demand

import "strings"

// ParseQuery builds a JobQuery from raw form values. Every field is trimmed
// and lower-cased and the skills string is split on commas.
func ParseQuery(jobTitle, location, experienceLevel, industry, requiredSkills string) JobQuery {
	return JobQuery{
		JobTitle:        normalize(jobTitle),
		Location:        normalize(location),
		ExperienceLevel: normalize(experienceLevel),
		Industry:        normalize(industry),
		RequiredSkills:  ParseSkills(requiredSkills),
	}
}

// ParseSkills splits a comma separated skill list, dropping empty tokens.
func ParseSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skill := normalize(part)
		if skill == "" {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
