package dto

// AddMeetingDocumentRequest POST /meetings/:id/documents
type AddMeetingDocumentRequest struct {
	DocumentName string   `json:"documentName" binding:"required,max=250"`
	DocumentPath string   `json:"documentPath" binding:"omitempty,max=250"`
	Sequence     *float64 `json:"sequence"     binding:"omitempty,min=0"`
	Remarks      string   `json:"remarks"      binding:"omitempty,max=500"`
	FileSize     int64    `json:"fileSize"     binding:"omitempty,min=0"`
	FileType     string   `json:"fileType"     binding:"omitempty,max=100"`
	UploadedBy   *string  `json:"uploadedBy"   binding:"omitempty,uuid"`
}

// UpdateMeetingDocumentRequest PUT /meeting-documents/:id
type UpdateMeetingDocumentRequest struct {
	DocumentName *string  `json:"documentName" binding:"omitempty,min=1,max=250"`
	DocumentPath *string  `json:"documentPath" binding:"omitempty,max=250"`
	Sequence     *float64 `json:"sequence"     binding:"omitempty,min=0"`
	Remarks      *string  `json:"remarks"      binding:"omitempty,max=500"`
}

// DocumentOrder new sequence for one document
type DocumentOrder struct {
	DocumentID string   `json:"documentId" binding:"required,uuid"`
	Sequence   *float64 `json:"sequence"   binding:"required,min=0"`
}

// ReorderDocumentsRequest PUT /meetings/:id/documents/reorder
type ReorderDocumentsRequest struct {
	DocumentOrder []DocumentOrder `json:"documentOrder" binding:"omitempty,dive"`
}

// UploadDocumentForm multipart fields of POST /upload/document
type UploadDocumentForm struct {
	MeetingID    string `form:"meetingId"    binding:"required,uuid"`
	DocumentName string `form:"documentName" binding:"omitempty,max=250"`
	Remarks      string `form:"remarks"      binding:"omitempty,max=500"`
	UploadedBy   string `form:"uploadedBy"   binding:"omitempty,uuid"`
}

// MeetingDocumentResponse document metadata
type MeetingDocumentResponse struct {
	ID           string      `json:"id"`
	MeetingID    string      `json:"meetingId"`
	DocumentName string      `json:"documentName"`
	DocumentPath string      `json:"documentPath,omitempty"`
	Sequence     float64     `json:"sequence"`
	Remarks      string      `json:"remarks,omitempty"`
	FileSize     int64       `json:"fileSize"`
	FileType     string      `json:"fileType,omitempty"`
	UploadedBy   *StaffBrief `json:"uploadedBy,omitempty"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

// ReorderDocumentsResponse documents after reordering; skipped ids belong to another meeting or do not exist
type ReorderDocumentsResponse struct {
	Documents []MeetingDocumentResponse `json:"documents"`
	Skipped   []string                  `json:"skipped"`
}

// DocumentStatsResponse GET /meetings/:id/documents/stats
type DocumentStatsResponse struct {
	TotalDocuments int64            `json:"totalDocuments"`
	TotalSize      int64            `json:"totalSize"`
	TotalSizeMB    float64          `json:"totalSizeMB"`
	FileTypes      map[string]int64 `json:"fileTypes"`
}

// FileUploadResponse result of storing a file against a document
type FileUploadResponse struct {
	DocumentID string `json:"documentId"`
	FileName   string `json:"fileName"`
	FilePath   string `json:"filePath"`
	FileSize   int64  `json:"fileSize"`
	FileType   string `json:"fileType"`
}

// FileDownload location and name of a stored file
type FileDownload struct {
	Path     string
	FileName string
	FileType string
}
