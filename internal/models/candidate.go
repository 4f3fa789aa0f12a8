// Package models defines the candidate record produced per resume and the search types
// used to query stored candidates.
package models

// CandidateRecord is the structured output for one resume document. Every text field is
// an empty string when extraction found nothing; RelevancyScore is set only when keywords
// were supplied.
type CandidateRecord struct {
	ID             string   `json:"ID,omitempty"`
	Name           string   `json:"Name"`
	Email          string   `json:"Email"`
	Phone          string   `json:"Phone"`
	LinkedIn       string   `json:"LinkedIn"`
	GitHub         string   `json:"GitHub"`
	Education      string   `json:"Education"`
	Experience     string   `json:"Experience"`
	Skills         string   `json:"Skills"`
	RelevancyScore *float64 `json:"RelevancyScore,omitempty"`
	SourceFile     string   `json:"SourceFile"`
	Error          string   `json:"Error,omitempty"`
	Details        *Details `json:"Details,omitempty"`
}

// Details carries the auxiliary sections and the extraction confidence.
type Details struct {
	Projects       string  `json:"Projects"`
	Certifications string  `json:"Certifications"`
	Languages      string  `json:"Languages"`
	Awards         string  `json:"Awards"`
	Confidence     float64 `json:"Confidence"`
}

// Score returns the relevancy score and whether one was computed.
func (r CandidateRecord) Score() (float64, bool) {
	if r.RelevancyScore == nil {
		return 0, false
	}
	return *r.RelevancyScore, true
}

// WithScore returns a copy of r carrying score.
func (r CandidateRecord) WithScore(score float64) CandidateRecord {
	r.RelevancyScore = &score
	return r
}

// Core field column names in output order. RelevancyScore sits between Skills and
// SourceFile when present.
const (
	ColName           = "Name"
	ColEmail          = "Email"
	ColPhone          = "Phone"
	ColLinkedIn       = "LinkedIn"
	ColGitHub         = "GitHub"
	ColEducation      = "Education"
	ColExperience     = "Experience"
	ColSkills         = "Skills"
	ColRelevancyScore = "RelevancyScore"
	ColSourceFile     = "SourceFile"
	ColError          = "Error"
)

// Columns returns the column order for a set of records. RelevancyScore and Error appear
// only when at least one record carries them.
func Columns(records []CandidateRecord) []string {
	var scored, failed bool
	for _, r := range records {
		scored = scored || r.RelevancyScore != nil
		failed = failed || r.Error != ""
	}
	cols := []string{ColName, ColEmail, ColPhone, ColLinkedIn, ColGitHub, ColEducation, ColExperience, ColSkills}
	if scored {
		cols = append(cols, ColRelevancyScore)
	}
	cols = append(cols, ColSourceFile)
	if failed {
		cols = append(cols, ColError)
	}
	return cols
}

// Field returns the value of the named column. The score is rendered with two decimals
// and is empty when absent.
func (r CandidateRecord) Field(col string) string {
	switch col {
	case ColName:
		return r.Name
	case ColEmail:
		return r.Email
	case ColPhone:
		return r.Phone
	case ColLinkedIn:
		return r.LinkedIn
	case ColGitHub:
		return r.GitHub
	case ColEducation:
		return r.Education
	case ColExperience:
		return r.Experience
	case ColSkills:
		return r.Skills
	case ColRelevancyScore:
		if s, ok := r.Score(); ok {
			return formatScore(s)
		}
		return ""
	case ColSourceFile:
		return r.SourceFile
	case ColError:
		return r.Error
	}
	return ""
}
