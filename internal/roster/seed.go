package roster

import "example.com/schoolactivities/internal/domain"

// SeedCatalog returns the fixed Mergington High School activity catalog the
// store is populated with at startup.
func SeedCatalog() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball training and inter-school matches",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu", "liam@mergington.edu"},
		},
		{
			Name:            "Swimming Club",
			Description:     "Swimming techniques and competitive training",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"ava@mergington.edu", "noah@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Acting, theater production, and performing arts",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 25,
			Participants:    []string{"isabella@mergington.edu", "ethan@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Painting, drawing, and mixed media art projects",
			Schedule:        "Thursdays, 3:00 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"mia@mergington.edu", "lucas@mergington.edu"},
		},
		{
			Name:            "Debate Team",
			Description:     "Develop critical thinking and public speaking through debates",
			Schedule:        "Fridays, 4:00 PM - 6:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"charlotte@mergington.edu", "william@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Competitive science events and hands-on experiments",
			Schedule:        "Tuesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"amelia@mergington.edu", "benjamin@mergington.edu"},
		},
	}
}
