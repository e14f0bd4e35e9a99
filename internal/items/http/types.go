package http

import "time"

type createReq struct {
	Text   string `json:"text"`
	IsDone bool   `json:"is_done"`
}

type updateReq struct {
	Text   *string `json:"text"`
	IsDone *bool   `json:"is_done"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Detail     string    `json:"detail"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
}
