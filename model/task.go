package model

// DefaultProject is used when a task is logged without a project.
const DefaultProject = "Project Name"

var SampleProjects = []string{
	DefaultProject,
	"Homepage Development",
	"API Integration",
	"UI/UX Design",
	"Backend Services",
	"Mobile App",
}

var SampleWorkTypes = []string{
	"Bug fixes",
	"Feature Development",
	"Meetings",
	"Research",
	"Documentation",
	"Testing",
}

type Task struct {
	ID          string  `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	TimesheetID string  `gorm:"column:timesheet_id;type:char(36);not null;index" json:"timesheetId"`
	Date        string  `gorm:"column:date;type:char(10);not null" json:"date"` // yyyy-MM-dd
	Description string  `gorm:"column:description;type:varchar(1000);not null" json:"description"`
	TypeOfWork  string  `gorm:"column:type_of_work;type:varchar(100)" json:"typeOfWork"`
	Hours       float64 `gorm:"column:hours;type:decimal(10,2);not null" json:"hours"`
	Project     string  `gorm:"column:project;type:varchar(200)" json:"project"`
}

func (Task) TableName() string {
	return "tasks"
}
