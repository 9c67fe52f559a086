package models

// ExecutionDateLayout is the format of Session.ExecutionDate
const ExecutionDateLayout = "2006-01-02 15:04:05"

// Session is one recorded fibonacci computation
type Session struct {
	SessionID     string  `json:"session_id" firestore:"session_id"`
	User          string  `json:"user" firestore:"user"`
	Output        []int64 `json:"output" firestore:"output"`
	UpperLimit    int64   `json:"upper_limit" firestore:"upper_limit"`
	Elapsed       float64 `json:"elapsed" firestore:"elapsed"`
	ExecutionDate string  `json:"execution_date" firestore:"execution_date"`
}
