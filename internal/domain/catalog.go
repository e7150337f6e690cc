package domain

// The academic catalog is strictly hierarchical:
// Board -> Class -> Subject -> Topic -> SubTopic.
// Every listing is scoped by its parent id; there is no global listing.

type Board struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Class struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	BoardID string `json:"boardId"`
}

type Subject struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ClassID string `json:"classId"`
}

type Topic struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SubjectID string `json:"subjectId"`
}

type SubTopic struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TopicID string `json:"topicId"`
}
