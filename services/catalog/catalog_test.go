package catalog

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		minor int64
		want  string
	}{
		{2500, "$25.00"},
		{3000, "$30.00"},
		{3550, "$35.50"},
		{5, "$0.05"},
		{0, "$0.00"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.minor); got != tc.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", tc.minor, got, tc.want)
		}
	}
}

func TestGetServiceByID(t *testing.T) {
	svc, ok := GetServiceByID("haircut")
	if !ok {
		t.Fatalf("expected haircut to exist")
	}
	if svc.Name != "Haircut" {
		t.Errorf("haircut name = %q, want %q", svc.Name, "Haircut")
	}
	if svc.Price != 2500 {
		t.Errorf("haircut price = %d, want 2500", svc.Price)
	}
	if svc.DurationMinutes != 30 {
		t.Errorf("haircut duration = %d, want 30", svc.DurationMinutes)
	}
	if svc.Currency != "usd" {
		t.Errorf("haircut currency = %q, want usd", svc.Currency)
	}

	if _, ok := GetServiceByID("mullet_special"); ok {
		t.Errorf("unknown service id should not resolve")
	}
}

func TestGetServiceByNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Haircut", "haircut", "HAIRCUT", "hAiRcUt"} {
		svc, ok := GetServiceByName(name)
		if !ok {
			t.Fatalf("GetServiceByName(%q) did not match", name)
		}
		if svc.ID != "haircut" {
			t.Errorf("GetServiceByName(%q) = %q, want haircut", name, svc.ID)
		}
	}

	if _, ok := GetServiceByName("Perm"); ok {
		t.Errorf("unknown service name should not resolve")
	}
}

func TestCatalogContents(t *testing.T) {
	want := map[string]int64{
		"haircut":      2500,
		"hair_eyebrow": 3000,
		"full_service": 4000,
		"hair_beard":   3500,
		"beard_only":   2000,
	}

	all := Services()
	if len(all) != len(want) {
		t.Fatalf("catalog has %d services, want %d", len(all), len(want))
	}
	for _, s := range all {
		price, ok := want[s.ID]
		if !ok {
			t.Errorf("unexpected service %q in catalog", s.ID)
			continue
		}
		if s.Price != price {
			t.Errorf("service %q price = %d, want %d", s.ID, s.Price, price)
		}
		if s.DurationMinutes <= 0 {
			t.Errorf("service %q has no duration", s.ID)
		}
	}
}
