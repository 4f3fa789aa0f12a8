package pipeline

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperjump/resumecua/internal/extract"
	"github.com/hyperjump/resumecua/internal/fileid"
	"github.com/hyperjump/resumecua/internal/keyword"
	"github.com/hyperjump/resumecua/internal/storage"
)

// corpusSkills gives every generated candidate one skill nobody else lists.
var corpusSkills = []string{
	"Kubernetes", "PostgreSQL", "Terraform", "Redis", "Kafka",
	"GraphQL", "TypeScript", "Prometheus", "Elasticsearch", "Ansible",
}

type corpusResume struct {
	file  string
	email string
	skill string
}

func corpusText(i int, skill string) string {
	return fmt.Sprintf("Candidate Number%c\ncand%d@example.com | (555) 010-%04d\n\nSkills\n%s, Git, Linux\n\nExperience\nEngineer at Example Corp 2019 - 2023\n",
		'A'+rune(i), i, i, skill)
}

// docxOf wraps each line of text in its own paragraph.
func docxOf(text string) []byte {
	var body strings.Builder
	for _, line := range strings.Split(text, "\n") {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">` + html.EscapeString(line) + `</w:t></w:r></w:p>`)
	}
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	fw, _ := w.Create("word/document.xml")
	_, _ = fw.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`))
	_ = w.Close()
	return buf.Bytes()
}

// buildCorpus writes one resume per skill to dir, alternating .txt and .docx.
func buildCorpus(t *testing.T, dir string) []corpusResume {
	t.Helper()
	out := make([]corpusResume, 0, len(corpusSkills))
	for i, skill := range corpusSkills {
		text := corpusText(i, skill)
		name := fmt.Sprintf("cand%02d.txt", i)
		content := []byte(text)
		if i%2 == 1 {
			name = fmt.Sprintf("cand%02d.docx", i)
			content = docxOf(text)
		}
		if err := os.WriteFile(filepath.Join(dir, name), content, 0600); err != nil {
			t.Fatal(err)
		}
		out = append(out, corpusResume{file: name, email: fmt.Sprintf("cand%d@example.com", i), skill: skill})
	}
	return out
}

func TestCorpus_parseStoreAndSearch(t *testing.T) {
	dir := t.TempDir()
	resumes := buildCorpus(t, dir)
	ctx := context.Background()

	paths, err := ListResumeFiles(dir, extract.SupportedExtensions())
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != len(resumes) {
		t.Fatalf("ListResumeFiles found %d files, want %d", len(paths), len(resumes))
	}

	p := New(nil, WithWorkers(3))
	rows, err := p.ProcessFiles(ctx, paths, Options{})
	if err != nil {
		t.Fatal(err)
	}

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "candidates.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	idx, err := keyword.NewMemBleveIndex()
	if err != nil {
		t.Fatal(err)
	}
	defer idx.Close()

	byFile := make(map[string]string, len(rows))
	for i := range rows {
		rec := rows[i]
		if rec.Error != "" {
			t.Fatalf("%s failed: %s", rec.SourceFile, rec.Error)
		}
		rec.ID = fileid.CandidateID(paths[i])
		byFile[rec.SourceFile] = rec.ID
		if err := store.SaveCandidate(ctx, &rec); err != nil {
			t.Fatal(err)
		}
		if err := idx.Index(ctx, &rec); err != nil {
			t.Fatal(err)
		}
	}

	if n, _ := store.CountCandidates(ctx); n != int64(len(resumes)) {
		t.Errorf("CountCandidates = %d, want %d", n, len(resumes))
	}

	for _, r := range resumes {
		t.Run(r.skill, func(t *testing.T) {
			res, err := idx.Search(ctx, strings.ToLower(r.skill), 5, &keyword.SearchOptions{SkillsBoost: 3})
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Hits) == 0 || res.Hits[0].ID != byFile[r.file] {
				t.Fatalf("top hit for %q should be %s, got %+v", r.skill, r.file, res.Hits)
			}
			c, err := store.GetCandidate(ctx, res.Hits[0].ID)
			if err != nil {
				t.Fatal(err)
			}
			if c.Email != r.email {
				t.Errorf("Email = %q, want %q", c.Email, r.email)
			}
		})
	}

	// A skill every candidate lists matches the whole corpus.
	res, err := idx.Search(ctx, "linux", 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != uint64(len(resumes)) {
		t.Errorf("linux Total = %d, want %d", res.Total, len(resumes))
	}
}

func TestCorpus_relevancyRanksOwner(t *testing.T) {
	dir := t.TempDir()
	resumes := buildCorpus(t, dir)
	paths, err := ListResumeFiles(dir, extract.SupportedExtensions())
	if err != nil {
		t.Fatal(err)
	}
	p := New(nil)
	for _, r := range resumes {
		rows, err := p.ProcessFiles(context.Background(), paths, Options{Keywords: []string{r.skill}})
		if err != nil {
			t.Fatal(err)
		}
		var owner float64
		others := 0.0
		for _, row := range rows {
			s, ok := row.Score()
			if !ok {
				t.Fatalf("%s has no score", row.SourceFile)
			}
			if row.SourceFile == r.file {
				owner = s
			} else if s > others {
				others = s
			}
		}
		if owner <= others {
			t.Errorf("%s: owner %s scored %.2f, best other %.2f", r.skill, r.file, owner, others)
		}
	}
}
