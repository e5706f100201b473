package util

import "testing"

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"web, api", []string{"web", "api"}},
		{" web ,, api , ", []string{"web", "api"}},
		{"", []string{}},
		{"solo", []string{"solo"}},
	}

	for _, c := range cases {
		got := SplitTags(c.in)
		if len(got) != len(c.want) {
			t.Errorf("SplitTags(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("SplitTags(%q) = %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func TestPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{3, 2, 2},
	}

	for _, c := range cases {
		if got := Pages(c.total, c.limit); got != c.want {
			t.Errorf("Pages(%d, %d) = %d, want %d", c.total, c.limit, got, c.want)
		}
	}
}

func TestEntropy(t *testing.T) {
	if Entropy("weak") >= 28 {
		t.Error("short lowercase password should be under the gate")
	}
	if Entropy("correct horse battery") < 28 {
		t.Error("long passphrase should clear the gate")
	}
}
