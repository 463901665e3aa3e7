package response

import "dinas_portal/internal/lib/pagination"

// Response is the single envelope every JSON endpoint answers with.
type Response struct {
	Success    bool             `json:"success"`
	Data       interface{}      `json:"data,omitempty"`
	Error      string           `json:"error,omitempty"`
	Message    string           `json:"message,omitempty"`
	Pagination *pagination.Meta `json:"pagination,omitempty"`
	Stats      interface{}      `json:"stats,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func MessageResponse(message string) Response {
	return Response{
		Success: true,
		Message: message,
	}
}

func ListResponse(data interface{}, meta pagination.Meta, stats interface{}) Response {
	return Response{
		Success:    true,
		Data:       data,
		Pagination: &meta,
		Stats:      stats,
	}
}

func ErrorResponse(err string) Response {
	return Response{
		Success: false,
		Error:   err,
	}
}
