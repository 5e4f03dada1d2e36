package models

// Position lifecycle.
const (
	PositionStatusOpen   = "open"
	PositionStatusOnHold = "on_hold"
	PositionStatusClosed = "closed"
)

// Candidate lifecycle. Only active candidates are matchable.
const (
	CandidateStatusActive   = "active"
	CandidateStatusInactive = "inactive"
	CandidateStatusPlaced   = "placed"
	CandidateStatusArchived = "archived"
)

// Work models of a position.
const (
	WorkModelOffice = "office"
	WorkModelRemote = "remote"
	WorkModelHybrid = "hybrid"
)

var ValidWorkModels = map[string]struct{}{
	WorkModelOffice: {},
	WorkModelRemote: {},
	WorkModelHybrid: {},
}

// Language proficiency levels, weakest first.
const (
	LanguageLevelBeginner     = "beginner"
	LanguageLevelIntermediate = "intermediate"
	LanguageLevelAdvanced     = "advanced"
	LanguageLevelNative       = "native"
)

// Education levels, lowest first. EducationRank orders them for comparison;
// unknown values rank 0 and are treated as missing data.
const (
	EducationHighSchool = "high_school"
	EducationAssociate  = "associate"
	EducationBachelor   = "bachelor"
	EducationMaster     = "master"
	EducationDoctorate  = "doctorate"
)

var EducationRank = map[string]int{
	EducationHighSchool: 1,
	EducationAssociate:  2,
	EducationBachelor:   3,
	EducationMaster:     4,
	EducationDoctorate:  5,
}
