package dto

// StaffListRequest GET /staff
type StaffListRequest struct {
	PaginationRequest
	Search string `form:"search" binding:"omitempty,max=100"`
}

// CreateStaffRequest POST /staff
type CreateStaffRequest struct {
	StaffName    string `json:"staffName"    binding:"required,max=250"`
	MobileNo     string `json:"mobileNo"     binding:"omitempty,max=20,mobile"`
	EmailAddress string `json:"emailAddress" binding:"omitempty,email,max=100"`
	Role         string `json:"role"         binding:"omitempty,oneof=Admin Convener Staff"`
	Department   string `json:"department"   binding:"omitempty,max=100"`
	Remarks      string `json:"remarks"      binding:"omitempty,max=500"`
	IsActive     *bool  `json:"isActive"`
}

// UpdateStaffRequest PUT /staff/:id, nil fields stay unchanged
type UpdateStaffRequest struct {
	StaffName    *string `json:"staffName"    binding:"omitempty,min=1,max=250"`
	MobileNo     *string `json:"mobileNo"     binding:"omitempty,max=20,mobile"`
	EmailAddress *string `json:"emailAddress" binding:"omitempty,max=100,email|len=0"`
	Role         *string `json:"role"         binding:"omitempty,oneof=Admin Convener Staff"`
	Department   *string `json:"department"   binding:"omitempty,max=100"`
	Remarks      *string `json:"remarks"      binding:"omitempty,max=500"`
	IsActive     *bool   `json:"isActive"`
}

// StaffResponse staff record
type StaffResponse struct {
	ID           string `json:"id"`
	StaffName    string `json:"staffName"`
	MobileNo     string `json:"mobileNo,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Role         string `json:"role"`
	Department   string `json:"department,omitempty"`
	Remarks      string `json:"remarks,omitempty"`
	IsActive     bool   `json:"isActive"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// StaffBrief staff fields embedded in member and document responses
type StaffBrief struct {
	ID           string `json:"id"`
	StaffName    string `json:"staffName"`
	EmailAddress string `json:"emailAddress,omitempty"`
	MobileNo     string `json:"mobileNo,omitempty"`
}
