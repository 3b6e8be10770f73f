package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type NewUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type ScheduleFinalizedMailData struct {
	ScheduleName   string `json:"scheduleName"`
	DepartmentName string `json:"departmentName"`
	ApprovedBy     string `json:"approvedBy"`
	Reason         string `json:"reason"`
}
