package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PostDTO struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Text    string `json:"text"`
	PubDate string `json:"pub_date"`
	Image   string `json:"image,omitempty"`
	Group   string `json:"group,omitempty"`
}

// CreatePostRequest accepts only writable fields; author and pub_date are
// server-assigned and silently ignored if sent.
type CreatePostRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
	Group string `json:"group"`
}

type UpdatePostRequest struct {
	Text  *string `json:"text"`
	Image *string `json:"image"`
	Group *string `json:"group"`
}

type ListPostsResponse struct {
	Count      int       `json:"count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
	Results    []PostDTO `json:"results"`
}

type GetPostResponse struct {
	Item PostDTO `json:"item"`
}

type CommentDTO struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Post    string `json:"post"`
	Text    string `json:"text"`
	Created string `json:"created"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

type ListCommentsResponse struct {
	Items []CommentDTO `json:"items"`
}

type GetCommentResponse struct {
	Item CommentDTO `json:"item"`
}

type GroupDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type ListGroupsResponse struct {
	Items []GroupDTO `json:"items"`
}

type GetGroupResponse struct {
	Item GroupDTO `json:"item"`
}
