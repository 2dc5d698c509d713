package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type ActionsResponse struct {
	Actions   []string `json:"actions"`
	TieBreaks []string `json:"tie_breaks"`
}
