package constants

// ThaiMonths is the fixed month vocabulary PM schedule slots are written
// in. Index i corresponds to calendar month i+1.
var ThaiMonths = []string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// ThaiMonthName returns the display name for calendar month m (1-12),
// or AbsentValue when m is out of range.
func ThaiMonthName(m int) string {
	if m < 1 || m > 12 {
		return AbsentValue
	}
	return ThaiMonths[m-1]
}
