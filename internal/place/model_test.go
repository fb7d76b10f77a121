package place

import "testing"

func TestHostName(t *testing.T) {
	tests := []struct {
		name  string
		owner *Owner
		want  string
	}{
		{"full name", &Owner{FirstName: "Ada", LastName: "Lovelace"}, "Ada Lovelace"},
		{"first only", &Owner{FirstName: "Ada"}, "Ada"},
		{"last only", &Owner{LastName: "Lovelace"}, "Lovelace"},
		{"empty owner", &Owner{}, "unknown"},
		{"no owner", nil, "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Place{Owner: tc.owner}
			if got := p.HostName(); got != tc.want {
				t.Errorf("HostName() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDisplayDescription(t *testing.T) {
	p := &Place{Description: "Cozy loft"}
	if got := p.DisplayDescription(); got != "Cozy loft" {
		t.Errorf("description = %q", got)
	}

	empty := &Place{}
	if got := empty.DisplayDescription(); got != "No description available." {
		t.Errorf("fallback = %q", got)
	}
}

func TestAmenityNames(t *testing.T) {
	p := &Place{Amenities: []Amenity{{Name: "WiFi"}, {Name: "Pool"}}}
	names := p.AmenityNames()
	if len(names) != 2 || names[0] != "WiFi" || names[1] != "Pool" {
		t.Errorf("names = %v", names)
	}

	empty := &Place{}
	names = empty.AmenityNames()
	if len(names) != 1 || names[0] != "No amenities listed" {
		t.Errorf("placeholder = %v", names)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{50, "$50"},
		{0, "$0"},
		{19.5, "$19.50"},
		{120.25, "$120.25"},
	}

	for _, tc := range tests {
		if got := FormatPrice(tc.price); got != tc.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tc.price, got, tc.want)
		}
	}
}
