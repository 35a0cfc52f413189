package constants

// Sheet tab names in the team spreadsheet
const (
	SheetUsersDB         = "Users_DB"
	SheetPMPlan          = "PM_Plan"
	SheetTasks           = "Task & Workload"
	SheetMasterSite      = "Master_Site"
	SheetAssetSensor     = "Asset_Sensor"
	SheetMasterEquipment = "Master_Equipment"
	SheetTeamTools       = "Team_Tools"
	SheetTeamProfile     = "Team_Profile"
	SheetLearningContent = "Learning_Content"
	SheetQuizData        = "Quiz_Data"
	SheetCalcTools       = "Calc_Tools"
	SheetManualDocs      = "Manual_Docs"
)

// Roles as stored in the Role column of Users_DB
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleUser   = "user"
)

// Account approval state required for login
const (
	UserStatusApproved = "approved"
)

// Task status vocabulary (สถานะงาน column)
const (
	TaskStatusPlanning   = "Planning"
	TaskStatusInProgress = "In progress"
	TaskStatusProblem    = "Problem"
	TaskStatusComplete   = "Complete"
)

// TaskStatuses is the full closed set, in display order.
var TaskStatuses = []string{
	TaskStatusPlanning,
	TaskStatusInProgress,
	TaskStatusProblem,
	TaskStatusComplete,
}

// IsValidTaskStatus reports whether s is one of the task status vocabulary.
func IsValidTaskStatus(s string) bool {
	for _, v := range TaskStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Tool transaction actions. The log stores free text containing one of
// the markers below; matching is by substring in either language.
const (
	ToolActionBorrow = "Borrow"
	ToolActionReturn = "Return"

	ToolActionBorrowLocal = "ยืมอุปกรณ์ (Borrow)"
	ToolActionReturnLocal = "คืนอุปกรณ์ (Return)"

	ToolMarkerBorrowTH = "ยืม"
	ToolMarkerReturnTH = "คืน"
)

// PM completion marker written to the สถานะ PM column
const (
	PMDoneMarker = "PM แล้ว"
)

// Spreadsheet column names. The sheets are maintained in Thai; the
// constants keep handlers and repositories free of literal strings.
const (
	ColUsername = "Username"
	ColPassword = "Password"
	ColStatus   = "Status"
	ColRole     = "Role"

	ColSiteName       = "ชื่อไซต์งาน"
	ColMasterSiteName = "ชื่อไซต์งาน (Process Work)"
	ColLatitude       = "ละติจูด (Latitude)"
	ColLongitude      = "ลองจิจูด (Longitude)"
	ColSIMExpiry      = "วันที่ซิมหมดอายุ"
	ColPMStatus       = "สถานะ PM"
	ColPMNote         = "หมายเหตุ"

	ColPMMajor  = "PM ใหญ่"
	ColPMMinor1 = "PM ย่อย ครั้งที่ 1"
	ColPMMinor2 = "PM ย่อย ครั้งที่ 2"
	ColPMMinor3 = "PM ย่อย ครั้งที่ 3"

	ColTaskScheduled = "วันที่เข้าทำ (Scheduled Date)"
	ColTaskDetail    = "ชื่องาน / รายละเอียด"
	ColTaskType      = "ประเภทงาน"
	ColTaskStatus    = "สถานะงาน"
	ColTaskAssignee  = "ผู้รับผิดชอบหลัก"
	ColTaskHelpers   = "ผู้ช่วย"

	ColEquipment = "Equipment"
	ColVolume    = "Volume"
	ColQuantity  = "จำนวน"

	ColMemberName  = "ชื่อ"
	ColMemberRole  = "ตำแหน่ง"
	ColMemberSkill = "ความเชี่ยวชาญ"
	ColMemberPhone = "เบอร์ติดต่อ"
	ColMemberCert  = "ใบเซอร์"

	ColTopicCategory = "หมวดหมู่"
	ColTopicTitle    = "ชื่อหัวข้อ"
	ColTopicFormula  = "สูตรการคำนวณ"
	ColTopicInfo     = "ข้อมูลการคำนวณ"
	ColTopicExample  = "ตัวอย่างการคำนวณ"

	ColQuizQuestion = "คำถาม"
	ColQuizChoiceA  = "ตัวเลือก A"
	ColQuizChoiceB  = "ตัวเลือก B"
	ColQuizChoiceC  = "ตัวเลือก C"
	ColQuizChoiceD  = "ตัวเลือก D"
	ColQuizAnswer   = "เฉลย"
	ColQuizExplain  = "คำอธิบาย (ถ้าตอบผิด)"

	ColCalcName     = "ชื่อสูตร"
	ColCalcVars     = "ชื่อตัวแปร"
	ColCalcEquation = "สมการ"
	ColCalcUnit     = "หน่วยผลลัพธ์"
	ColCalcDesc     = "คำอธิบาย"

	ColDocCategory   = "หมวดหมู่"
	ColDocDetail     = "รายละเอียด"
	ColDocFolderLink = "ลิงก์โฟลเดอร์"
	ColDocFileLink   = "ลิงก์เอกสาร"
)

// Team_Tools positional layout, used when the log predates the named
// quantity column: 0=timestamp, 1=borrower, 2=equipment, 3=site, 4=action.
const (
	ToolsIdxTimestamp = 0
	ToolsIdxBorrower  = 1
	ToolsIdxEquipment = 2
	ToolsIdxSite      = 3
	ToolsIdxAction    = 4
)

// JWT token types
const (
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// Absent value rendered for missing or blank cells
const AbsentValue = "-"

// Timestamps written back to the spreadsheet use the team's local
// offset (UTC+7), matching the rows the old client appended.
const (
	SheetTimestampLayout = "2006-01-02 15:04:05"
	SheetDateLayout      = "02/01/2006"
	SheetUTCOffsetHours  = 7
)
