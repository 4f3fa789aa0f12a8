package scoring

import (
	"reflect"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     float64
	}{
		{"no keywords", "Skills\nPython", nil, 0},
		{"blank keywords", "Skills\nPython", []string{" ", ""}, 0},
		{"empty text", "", []string{"python"}, 0},
		{
			"skills section match",
			"Skills\nPython, Go, Docker\n\nExperience\nBuilt services in Go",
			[]string{"python", "rust", "java", "kotlin"},
			70,
		},
		{"partial match in summary", "Summary\nJavaScript developer", []string{"java"}, 95},
		{"general bucket counted twice", "python", []string{"python", "rust", "go", "java"}, 40},
		{"emphasis terms weigh double", "5+ years building APIs", []string{"5+ years", "cobol", "fortran"}, 80},
		{"per-term cap", "Skills\nGo Go Go Go", []string{"go", "rust", "java", "c#", "ruby", "perl"}, 50},
		{"score capped at 100", "Skills\nPython", []string{"python"}, 100},
		{"case insensitive", "SKILLS\nPYTHON", []string{"Python", "rust", "java", "kotlin"}, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.text, tt.keywords); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore_bounds(t *testing.T) {
	text := "Skills\nPython, Go, Docker\n\nExperience\nSenior engineer writing Python and Go"
	got := Score(text, []string{"python"})
	if got <= 0 || got > 100 {
		t.Errorf("Score() = %v, want within (0, 100]", got)
	}
}

func TestScore_keywordOrderIrrelevant(t *testing.T) {
	text := "Summary\nBackend developer\nSkills\nGo, Kafka, PostgreSQL\nExperience\nGo services at scale"
	a := Score(text, []string{"go", "kafka", "rust", "java"})
	b := Score(text, []string{"java", "rust", "kafka", "go"})
	if a != b {
		t.Errorf("order changed score: %v vs %v", a, b)
	}
}

func TestSections(t *testing.T) {
	got := Sections("Jane\nSkills\nGo\nSkills\nRust\n\nEducation\nBSc")
	want := map[string]string{"general": "Jane", "skills": "Rust", "education": "BSc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %v, want %v", got, want)
	}
}

func TestSections_skillsHeadingPrefix(t *testing.T) {
	got := Sections("Jane\nSkillset\nGo, Rust\nTechnologyX\nGit")
	want := map[string]string{"general": "Jane", "skills": "Go, Rust\nTechnologyX\nGit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %v, want %v", got, want)
	}
}

func TestTerms(t *testing.T) {
	got := Terms([]string{"  Python ", "python", "", "Go"})
	if want := []string{"python", "go"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
}

func TestWeight(t *testing.T) {
	if Weight("skills") != 2.0 || Weight("general") != 0.8 || Weight("other") != 1.0 {
		t.Error("unexpected section weights")
	}
}
