package model

// Staff organization member who can attend meetings (table staff)
type Staff struct {
	StaffID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StaffName    string `gorm:"type:varchar(250);not null"                     json:"staffName"`
	MobileNo     string `gorm:"type:varchar(20)"                               json:"mobileNo,omitempty"`
	EmailAddress string `gorm:"type:varchar(100)"                              json:"emailAddress,omitempty"`
	Role         Role   `gorm:"type:varchar(20);not null"                      json:"role"`
	Department   string `gorm:"type:varchar(100)"                              json:"department,omitempty"`
	Remarks      string `gorm:"type:varchar(500)"                              json:"remarks,omitempty"`
	IsActive     bool   `gorm:"not null"                                       json:"isActive"`
	BaseModel
}

// TableName table name
func (Staff) TableName() string { return "staff" }
