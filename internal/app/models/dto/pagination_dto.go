package dto

// PaginationInfo represents pagination metadata. Field names are part of the
// external API contract.
type PaginationInfo struct {
	CurrentPage  int   `json:"currentPage" example:"1"`
	TotalPages   int   `json:"totalPages" example:"3"`
	TotalRecords int64 `json:"totalRecords" example:"25"`
	Limit        int   `json:"limit" example:"10"`
}
