// Package fields extracts candidate fields from normalized resume text. Every extractor is
// a pure function that returns an empty value instead of failing.
package fields

import (
	"github.com/hyperjump/resumecua/internal/models"
	"github.com/hyperjump/resumecua/internal/ner"
	"github.com/hyperjump/resumecua/internal/standardize"
)

// Extract builds a candidate record from normalized text. Entities are consulted only
// when useNER is set; SourceFile and RelevancyScore are left to the caller.
func Extract(text string, ents ner.Entities, useNER bool) models.CandidateRecord {
	if !useNER {
		ents = ner.Entities{}
	}
	linkedIn, gitHub := ProfileURLs(text)
	return models.CandidateRecord{
		Name:       Name(text, ents),
		Email:      Email(text),
		Phone:      Phone(text),
		LinkedIn:   linkedIn,
		GitHub:     gitHub,
		Education:  Education(text),
		Experience: Experience(text),
		Skills:     standardize.JoinList(Skills(text, ents.NounChunks)),
	}
}

// Details extracts the auxiliary sections and scores how complete r is.
func Details(text string, r models.CandidateRecord) *models.Details {
	d := Additional(text)
	d.Confidence = Confidence(r)
	return &d
}
