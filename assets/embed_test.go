package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"img01.png", "img01.png"},
		{"./img01.png", "img01.png"},
		{"assets/noise02.png", "noise02.png"},
		{"/home/me/project/assets/img02.png", "img02.png"},
		{"/tmp/elsewhere/img02.png", "img02.png"},
	}
	for _, c := range cases {
		if got := cleanAssetPath(c.in); got != c.want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeEmbeddedImages(t *testing.T) {
	for _, name := range []string{"img01.png", "img02.png", "noise02.png"} {
		img, err := DecodeImage(name)
		if err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
			t.Fatalf("%s decoded empty", name)
		}
	}
}

func TestDecodeMissingImage(t *testing.T) {
	if _, err := DecodeImage("missing.png"); err == nil {
		t.Fatal("expected error for missing asset")
	}
}
