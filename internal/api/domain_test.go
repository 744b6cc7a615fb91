package api

import (
	"math"
	"testing"
)

func TestOrderHasStatus(t *testing.T) {
	tests := []struct {
		name   string
		status string
		query  string
		want   bool
	}{
		{"exact match", "pending", "pending", true},
		{"case insensitive", "Delivered", "delivered", true},
		{"surrounding whitespace", "  shipped ", "shipped", true},
		{"different status", "pending", "delivered", false},
		{"empty status", "", "pending", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Order{Status: tt.status}
			if got := o.HasStatus(tt.query); got != tt.want {
				t.Errorf("HasStatus(%q) on %q = %v, want %v", tt.query, tt.status, got, tt.want)
			}
		})
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"no reviews", nil, 0},
		{"single review", []int{4}, 4},
		{"mixed ratings", []int{5, 4, 3}, 4},
		{"fractional mean", []int{5, 4}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]Review, len(tt.ratings))
			for i, r := range tt.ratings {
				reviews[i] = Review{Rating: r}
			}
			if got := AverageRating(reviews); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AverageRating() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStructureKind(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		want      string
	}{
		{"plain sarl", "SARL", StructureSARL},
		{"sarl beats sa", "sarl unipersonnelle", StructureSARL},
		{"long form with diacritics", "Société à Responsabilité Limitée", StructureSARL},
		{"plain sa", "SA", StructureSA},
		{"societe anonyme", "Société Anonyme", StructureSA},
		{"gic", "GIC agricole", StructureGIC},
		{"cooperative", "Coopérative", StructureCOOP},
		{"unrecognised", "entreprise individuelle", StructureUnknown},
		{"empty", "", StructureUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Formalisation{Structure: tt.structure}
			if got := f.StructureKind(); got != tt.want {
				t.Errorf("StructureKind(%q) = %q, want %q", tt.structure, got, tt.want)
			}
		})
	}
}

func TestRequestTypeLabels(t *testing.T) {
	tests := []struct {
		requestType string
		wantLabel   string
		wantColor   string
	}{
		{RequestTypeInformation, "Information", "blue"},
		{RequestTypePartnership, "Partnership", "green"},
		{RequestTypeSupport, "Support", "orange"},
		{RequestTypeComplaint, "Complaint", "red"},
		{RequestTypeOther, "Other", "gray"},
		{"something-new", "something-new", "gray"},
	}

	for _, tt := range tests {
		t.Run(tt.requestType, func(t *testing.T) {
			if got := RequestTypeLabel(tt.requestType); got != tt.wantLabel {
				t.Errorf("RequestTypeLabel = %q, want %q", got, tt.wantLabel)
			}
			if got := RequestTypeColor(tt.requestType); got != tt.wantColor {
				t.Errorf("RequestTypeColor = %q, want %q", got, tt.wantColor)
			}
		})
	}
}

func TestSubscriberMerge(t *testing.T) {
	collections := subscriptionCollections{}
	collections.SubscribedUsers = append(collections.SubscribedUsers, struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}{ID: 1, Name: "Alice", Email: "alice@x.com"})
	collections.SubscribedEmails = append(collections.SubscribedEmails, struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
	}{ID: 9, Email: "list@x.com"})

	merged := collections.merge()
	if len(merged) != 2 {
		t.Fatalf("got %d subscribers, want 2", len(merged))
	}

	if merged[0].Name != "Alice" || merged[0].Type != SubscriberTypeUser {
		t.Errorf("user entry = %+v, want name Alice type %s", merged[0], SubscriberTypeUser)
	}
	if merged[1].Name != SubscriberPlaceholderName || merged[1].Type != SubscriberTypeEmail {
		t.Errorf("email entry = %+v, want placeholder name type %s", merged[1], SubscriberTypeEmail)
	}
	if merged[1].Email != "list@x.com" {
		t.Errorf("email entry address = %q, want list@x.com", merged[1].Email)
	}
}
