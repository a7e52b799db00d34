package dto

// The legacy QuillAcademy clients consume the store's acknowledgment objects
// directly, so these response shapes are part of the public contract and use
// the driver's field naming (insertedId, matchedCount, deletedCount, ...).

// InsertResult mirrors the store's insert acknowledgment.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the store's update acknowledgment.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId,omitempty"`
}

// DeleteResult mirrors the store's delete acknowledgment.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// DuplicateResponse is the legacy duplicate-guard signal: HTTP 200 with a
// message field and a null insertedId instead of an error status.
type DuplicateResponse struct {
	Message    string      `json:"message"`
	InsertedID interface{} `json:"insertedId"`
}

// CountResponse carries a single named count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// StatsResponse aggregates the dashboard counts in one response.
type StatsResponse struct {
	Users       int64 `json:"users"`
	Classes     int64 `json:"classes"`
	Enrollments int64 `json:"enrollments"`
	Assignments int64 `json:"assignments"`
}

// PaymentIntentResponse returns the processor's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
