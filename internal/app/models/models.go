// Package models defines the typed documents of the QuillAcademy store.
//
// Only classes and users carry a fixed schema. Payments, teacher requests,
// feedback, assignments and submissions accept arbitrary caller payloads and
// travel through the repositories as raw bson documents; the handlers only
// read the key fields they need (email, classId, student_email, assignmentId,
// submitDate, status).
package models

// Collection names.
const (
	CollectionClasses         = "classes"
	CollectionUsers           = "users"
	CollectionPayments        = "payments"
	CollectionTeacherRequests = "teacherRequests"
	CollectionFeedback        = "feedback"
	CollectionAssignments     = "assignments"
	CollectionSubmissions     = "submissions"
)
