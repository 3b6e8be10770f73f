package handler

type ContextKey string

var (
	RoleCtxKey       ContextKey = "role"
	SubCtxKey        ContextKey = "sub"
	MyInfoCtx        ContextKey = "myInfo"
	UserInfoCtx      ContextKey = "userInfo"
	DepartmentCtx    ContextKey = "department"
	EmployeeCtx      ContextKey = "employee"
	ShiftTemplateCtx ContextKey = "shiftTemplate"
	LeaveTemplateCtx ContextKey = "leaveTemplate"
	HolidayCtx       ContextKey = "holiday"
	DutyScheduleCtx  ContextKey = "dutySchedule"
)
