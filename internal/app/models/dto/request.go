package dto

// ReplaceClassRequest is the fixed field subset written by the class replace
// route. Fields outside this subset are dropped on replace.
type ReplaceClassRequest struct {
	Title            string  `json:"title"`
	Image            string  `json:"image"`
	TeacherName      string  `json:"teacher_name"`
	TeacherEmail     string  `json:"teacher_email"`
	ShortDescription string  `json:"short_description"`
	Price            float64 `json:"price"`
}

// StatusRequest carries the single status field for in-place status updates.
type StatusRequest struct {
	Status string `json:"status"`
}

// PaymentIntentRequest carries the decimal class price; the amount forwarded
// to the processor is the price converted to integer minor units.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}
