package domain

// SubmissionType distinguishes the two public forms.
type SubmissionType string

// Submission types.
const (
	SubmissionContact SubmissionType = "contact"
	SubmissionJoin    SubmissionType = "join"
)

// SubmissionStatus is the review state of a submission.
type SubmissionStatus string

// Submission statuses.
const (
	SubmissionUnread   SubmissionStatus = "unread"
	SubmissionReviewed SubmissionStatus = "reviewed"
)

// FormSubmission is a stored contact or join-request form. Subject/Message
// belong to contact submissions, Department/Year/Reason to join requests;
// the unused fields stay empty. Status starts as unread and is the only
// field updatable after creation.
// swagger:model FormSubmission
type FormSubmission struct {
	ID         string           `json:"id"`
	Type       SubmissionType   `json:"type"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Subject    string           `json:"subject,omitempty"`
	Message    string           `json:"message,omitempty"`
	Department string           `json:"department,omitempty"`
	Year       string           `json:"year,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Date       string           `json:"date"`
	Status     SubmissionStatus `json:"status"`
}
