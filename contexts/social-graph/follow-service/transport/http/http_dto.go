package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FollowDTO echoes user read-only; following is the followee username.
type FollowDTO struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Following string `json:"following"`
}

type CreateFollowRequest struct {
	Following string `json:"following"`
}

type ListFollowsResponse struct {
	Items []FollowDTO `json:"items"`
}

type GetFollowResponse struct {
	Item FollowDTO `json:"item"`
}
