package registry

import "example.com/signup/internal/domain"

// seedActivities returns the Mergington High School catalog loaded at startup.
func seedActivities() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Basketball",
			Description:     "Team sport focusing on basketball skills and competition",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants: []string{
				"james@mergington.edu",
				"maria@mergington.edu",
			},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis fundamentals and play friendly matches",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants: []string{
				"sophia@mergington.edu",
			},
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants: []string{
				"michael@mergington.edu",
				"daniel@mergington.edu",
			},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants: []string{
				"emma@mergington.edu",
				"sophia@mergington.edu",
			},
		},
		{
			Name:            "Art Club",
			Description:     "Explore your creativity through painting and drawing",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants: []string{
				"amelia@mergington.edu",
			},
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce plays and performances",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants: []string{
				"ella@mergington.edu",
				"scarlett@mergington.edu",
			},
		},
	}
}
