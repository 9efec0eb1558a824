package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wkalungi/sponsorbase/internal/app/models"
)

// ColumnCount is the width of the child registration sheet.
const ColumnCount = 37

// Positional schema of the registration sheet. The order is fixed and the
// import breaks silently if a template reorders columns, so keep this block
// in sync with childInsertColumns in the repositories package.
const (
	colFullName = iota
	colPreferredName
	colResidence
	colTribe
	colGender
	colDateOfBirth
	colWeight
	colHeight
	colAvatar
	colInterest
	colInSchool
	colSchoolName
	colEducationLevel
	colClass
	colBestSubject
	colIsSponsored
	colSponsorshipType
	colFatherName
	colFatherAlive
	colFatherDescription
	colMotherName
	colMotherAlive
	colMotherDescription
	colGuardian
	colGuardianContact
	colGuardianRelationship
	colSiblings
	colBackgroundInfo
	colHealthStatus
	colResponsibility
	colFaithRelationship
	colReligion
	colPrayerRequest
	colYearEnrolled
	colIsDeparted
	colStaffComment
	colCompiledBy
)

// Outcome classifies what the mapper decided about one row.
type Outcome int

const (
	// OutcomeMapped means the row produced a child draft.
	OutcomeMapped Outcome = iota
	// OutcomeSkipped means the row had no full name and is ignored.
	OutcomeSkipped
	// OutcomeInvalid means the row cannot be mapped; Reason says why.
	OutcomeInvalid
)

// MappedRow is the mapper's classification of a single sheet row.
type MappedRow struct {
	Outcome Outcome
	Draft   *models.Child
	Reason  string
}

// dateLayouts are the formats accepted for date cells, tried in order.
// Workbooks exported from different tools format dates inconsistently.
var dateLayouts = []string{
	"2006-01-02",
	"01-02-06",
	"1/2/2006",
	"2/1/2006",
	"02/01/2006",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// MapRow maps one sheet row into a child draft.
//
// The only row-level validation is the skip rule: a row whose first cell
// (full name) is empty is skipped, not an error. A row that names a child
// but carries fewer than ColumnCount cells is classified invalid rather
// than importing misaligned data.
//
// Cell coercion is best-effort: a cell that does not parse as its column's
// type leaves the corresponding field nil and the row still imports, which
// mirrors the untyped pass-through of the manual registration form.
func MapRow(cells []string) MappedRow {
	if len(cells) == 0 || strings.TrimSpace(cells[colFullName]) == "" {
		return MappedRow{Outcome: OutcomeSkipped}
	}

	if len(cells) < ColumnCount {
		return MappedRow{
			Outcome: OutcomeInvalid,
			Reason:  fmt.Sprintf("short row: got %d cells, want %d", len(cells), ColumnCount),
		}
	}

	draft := &models.Child{
		FullName:             strings.TrimSpace(cells[colFullName]),
		PreferredName:        strings.TrimSpace(cells[colPreferredName]),
		Residence:            strings.TrimSpace(cells[colResidence]),
		Tribe:                strings.TrimSpace(cells[colTribe]),
		Gender:               strings.TrimSpace(cells[colGender]),
		DateOfBirth:          parseDate(cells[colDateOfBirth]),
		Weight:               parseFloat(cells[colWeight]),
		Height:               parseFloat(cells[colHeight]),
		Avatar:               strings.TrimSpace(cells[colAvatar]),
		Interest:             strings.TrimSpace(cells[colInterest]),
		InSchool:             parseBool(cells[colInSchool]),
		SchoolName:           strings.TrimSpace(cells[colSchoolName]),
		EducationLevel:       strings.TrimSpace(cells[colEducationLevel]),
		Class:                strings.TrimSpace(cells[colClass]),
		BestSubject:          strings.TrimSpace(cells[colBestSubject]),
		IsSponsored:          parseBool(cells[colIsSponsored]),
		SponsorshipType:      strings.TrimSpace(cells[colSponsorshipType]),
		FatherName:           strings.TrimSpace(cells[colFatherName]),
		FatherAlive:          parseBool(cells[colFatherAlive]),
		FatherDescription:    strings.TrimSpace(cells[colFatherDescription]),
		MotherName:           strings.TrimSpace(cells[colMotherName]),
		MotherAlive:          parseBool(cells[colMotherAlive]),
		MotherDescription:    strings.TrimSpace(cells[colMotherDescription]),
		Guardian:             strings.TrimSpace(cells[colGuardian]),
		GuardianContact:      strings.TrimSpace(cells[colGuardianContact]),
		GuardianRelationship: strings.TrimSpace(cells[colGuardianRelationship]),
		Siblings:             strings.TrimSpace(cells[colSiblings]),
		BackgroundInfo:       strings.TrimSpace(cells[colBackgroundInfo]),
		HealthStatus:         strings.TrimSpace(cells[colHealthStatus]),
		Responsibility:       strings.TrimSpace(cells[colResponsibility]),
		FaithRelationship:    strings.TrimSpace(cells[colFaithRelationship]),
		Religion:             strings.TrimSpace(cells[colReligion]),
		PrayerRequest:        strings.TrimSpace(cells[colPrayerRequest]),
		YearEnrolled:         parseInt(cells[colYearEnrolled]),
		IsDeparted:           parseBool(cells[colIsDeparted]),
		StaffComment:         strings.TrimSpace(cells[colStaffComment]),
		CompiledBy:           strings.TrimSpace(cells[colCompiledBy]),
	}

	return MappedRow{Outcome: OutcomeMapped, Draft: draft}
}

func parseDate(cell string) *time.Time {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return &t
		}
	}
	return nil
}

func parseFloat(cell string) *float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(cell string) *int {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	// Spreadsheets format whole numbers as "2015" or "2015.0" depending
	// on the cell style.
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		n := int(f)
		if float64(n) == f {
			return &n
		}
	}
	return nil
}

func parseBool(cell string) *bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "yes", "true", "1", "y":
		v := true
		return &v
	case "no", "false", "0", "n":
		v := false
		return &v
	}
	return nil
}
