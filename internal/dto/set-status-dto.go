package dto

type SetStatusRequest struct {
	Status string `json:"status"`
}
