package normalize

import "testing"

func TestForComparison_Submission(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Full question", "What is a dog?", "dog"},
		{"Plural copula", "Who are the Beatles?", "beatles"},
		{"Contraction", "What's dirt?", "dirt"},
		{"Whos without copula", "Whos Napoleon", "napoleon"},
		{"Where was", "where was the Alamo", "alamo"},
		{"Mixed case copula", "What Is A dog", "dog"},
		{"No prefix", "dog", "dog"},
		{"Article an is kept", "what is an apple?", "an apple"},
		{"Only first interrogative", "what what is x", "what is x"},
		{"Copula without interrogative", "is the dog", "dog"},
		{"Article must be followed by space", "what is theater", "theater"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForComparison(tt.input, Submission); got != tt.want {
				t.Errorf("ForComparison(%q, Submission) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestForComparison_Answer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"The", "The Dog", "dog"},
		{"A", "a dog", "dog"},
		{"An", "An apple", "apple"},
		{"Punctuation", "St. Louis, Missouri", "st louis missouri"},
		{"Interrogatives are not stripped", "What a Wonderful World", "what a wonderful world"},
		{"Only one article", "the the end", "the end"},
		{"Surrounding space", "  Paris ", "paris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForComparison(tt.input, Answer); got != tt.want {
				t.Errorf("ForComparison(%q, Answer) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripPunctuation(t *testing.T) {
	if got := StripPunctuation("What's up, doc?!"); got != "Whats up doc" {
		t.Errorf("StripPunctuation() = %q, want %q", got, "Whats up doc")
	}
}

func TestHasInterrogativePrefix(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"what is dirt", true},
		{"WHERES waldo", true},
		{"who ", true},
		{"whatever", false},
		{"whom is it", false},
		{"dirt", false},
		{"what", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := HasInterrogativePrefix(tt.input); got != tt.want {
				t.Errorf("HasInterrogativePrefix(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
