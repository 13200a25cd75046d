package grammar

import "testing"

func TestParseHeaderExamples(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		label  string
		params map[string]string
	}{
		{
			name:  "label only",
			text:  `::note::`,
			label: "note",
		},
		{
			name:   "single param",
			text:   `::note style=warning::`,
			label:  "note",
			params: map[string]string{"style": "warning"},
		},
		{
			name:  "quoted value with spaces",
			text:  `::note title="Watch out"::`,
			label: "note",
			params: map[string]string{
				"title": "Watch out",
			},
		},
		{
			name:  "multiple params",
			text:  `::figure width=400 caption="A diagram"::`,
			label: "figure",
			params: map[string]string{
				"width":   "400",
				"caption": "A diagram",
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, err := ParseHeader(c.text)
			if err != nil {
				t.Fatalf("ParseHeader(%q): %v", c.text, err)
			}
			if h.Label != c.label {
				t.Errorf("Label = %q, want %q", h.Label, c.label)
			}
			if len(h.Params) != len(c.params) {
				t.Fatalf("got %d params, want %d", len(h.Params), len(c.params))
			}
			for _, p := range h.Params {
				want, ok := c.params[p.Name]
				if !ok {
					t.Errorf("unexpected param %q", p.Name)
					continue
				}
				if p.Value != want {
					t.Errorf("param %q = %q, want %q", p.Name, p.Value, want)
				}
			}
		})
	}
}
