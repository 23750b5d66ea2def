package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Hardware", "hardware"},
		{"Email & Calendar", "email-&-calendar"},
		{"  Network   Access  ", "network-access"},
		{"VPN", "vpn"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.label); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}
