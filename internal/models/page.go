package models

import "encoding/json"

// Page is the backend's pagination envelope. Pages are zero-indexed.
type Page struct {
	Content       json.RawMessage `json:"content"`
	Number        int             `json:"number"`
	TotalPages    int             `json:"totalPages"`
	TotalElements int             `json:"totalElements"`
	Size          int             `json:"size"`
}
