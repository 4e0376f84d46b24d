package apitest

import "activity-signup-client/internal/model"

// Teacher — учётная запись, которую знает фейковый сервер по умолчанию.
const (
	TeacherUsername = "mrodriguez"
	TeacherPassword = "art123"
)

// Teachers возвращает учётные записи по умолчанию.
func Teachers() map[string]string {
	return map[string]string{TeacherUsername: TeacherPassword}
}

// Activities возвращает набор занятий по умолчанию.
func Activities() []model.Activity {
	return []model.Activity{
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
	}
}
