package models

// Career status values
const (
	CareerStatusActive   = "Active"
	CareerStatusInactive = "Inactive"
)

// Course level values
const (
	CourseLevelDiploma      = "Diploma"
	CourseLevelBachelor     = "Bachelor"
	CourseLevelPostgraduate = "Postgraduate"
)

// Course modality values
const (
	CourseModalityInPerson = "In-person"
	CourseModalityOnline   = "Online"
	CourseModalityHybrid   = "Hybrid"
)

// Course status values
const (
	CourseStatusActive   = "Active"
	CourseStatusPaused   = "Paused"
	CourseStatusFinished = "Finished"
)

// Student status values
const (
	StudentStatusActive         = "Active"
	StudentStatusTemporaryLeave = "Temporary leave"
	StudentStatusGraduated      = "Graduated"
	StudentStatusPermanentLeave = "Permanent leave"
)

// CareerStatuses lists the valid career status values.
var CareerStatuses = []string{CareerStatusActive, CareerStatusInactive}

// CourseLevels lists the valid course level values.
var CourseLevels = []string{CourseLevelDiploma, CourseLevelBachelor, CourseLevelPostgraduate}

// CourseModalities lists the valid course modality values.
var CourseModalities = []string{CourseModalityInPerson, CourseModalityOnline, CourseModalityHybrid}

// CourseStatuses lists the valid course status values.
var CourseStatuses = []string{CourseStatusActive, CourseStatusPaused, CourseStatusFinished}

// StudentStatuses lists the valid student status values.
var StudentStatuses = []string{StudentStatusActive, StudentStatusTemporaryLeave, StudentStatusGraduated, StudentStatusPermanentLeave}

// IsValidValue reports whether value is one of the allowed enum values.
func IsValidValue(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
