package api

// DriveFile is the descriptor of a file in the remote object store.
// ModifiedTime is RFC 3339 as returned by the store.
type DriveFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
}

// FileListResponse is the body of a file search (GET /files?q=...).
type FileListResponse struct {
	Files []DriveFile `json:"files"`
}

// DriveErrorResponse is the error envelope the remote object store returns.
type DriveErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
