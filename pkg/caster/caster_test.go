package caster

import "testing"

type payload struct {
	Name  string  `json:"name"`
	Speed float64 `json:"speed"`
}

func TestJSONChannelCasterRoundTrip(t *testing.T) {
	c := JSONChannelCaster[payload]{}

	data, err := c.To(payload{Name: "VER", Speed: 312.5})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got, err := c.From(data)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.Name != "VER" || got.Speed != 312.5 {
		t.Errorf("got %+v", got)
	}

	if _, err := c.From("not json"); err == nil {
		t.Error("no error for malformed input")
	}
}
