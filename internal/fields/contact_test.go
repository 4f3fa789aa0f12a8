package fields

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Jane Doe\njane@example.com | (555) 123-4567", "jane@example.com"},
		{"Contact: jane.doe+cv@example.co.uk", "jane.doe+cv@example.co.uk"},
		{"no address here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"us with parens", "jane@example.com | (555) 123-4567", "(+1) 555-123-4567"},
		{"contact keyword wins", "Jane Doe\nID 12345678\nMobile: 555.123.4567", "(+1) 555-123-4567"},
		{"india via keyword", "Phone: +91 98765 43210", "(+91) 98765-43210"},
		{"ten digits outrank earlier runs", "Ref 4412345\nCall 5551234567", "(+1) 555-123-4567"},
		{"ties keep discovery order", "Office 2345678 Home 3456789", "(+23) 45678"},
		{"no number", "Jane Doe", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone(tt.in); got != tt.want {
				t.Errorf("Phone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProfileURLs(t *testing.T) {
	li, gh := ProfileURLs("linkedin.com/in/janedoe | https://github.com/jane\nwww.linkedin.com/in/other")
	if li != "https://linkedin.com/in/janedoe" {
		t.Errorf("LinkedIn = %q", li)
	}
	if gh != "https://github.com/jane" {
		t.Errorf("GitHub = %q", gh)
	}

	li, gh = ProfileURLs("www.linkedin.com/in/x")
	if li != "https://www.linkedin.com/in/x" || gh != "" {
		t.Errorf("got %q, %q", li, gh)
	}
}
