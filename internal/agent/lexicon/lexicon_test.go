package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Sofa PUTIH", "sofa putih"},
		{"punctuation to space", "sofa, putih!", "sofa putih"},
		{"keeps hyphen", "warna abu-abu", "warna abu-abu"},
		{"collapses whitespace", "  sofa   putih ", "sofa putih"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestContainsTerm(t *testing.T) {
	assert.True(t, ContainsTerm("cari sofa putih", "sofa"))
	assert.True(t, ContainsTerm("Sofa murah", "sofa"))
	// word boundary: no substring matches
	assert.False(t, ContainsTerm("sofabed murah", "sofa"))
	assert.False(t, ContainsTerm("", "sofa"))
}

func TestFindCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cari sofa putih", "sofa"},
		{"ada meja kayu", "meja"},
		{"i want a table", "table"},
		{"tempat tidur minimalis", "tempat tidur"},
		{"warna putih saja", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FindCategory(tt.in), tt.in)
	}
}

func TestFindColorAndMaterial(t *testing.T) {
	assert.Equal(t, "putih", FindColor("yang putih dong"))
	assert.Equal(t, "white", FindColor("the white one"))
	assert.Equal(t, "", FindColor("meja kayu"))

	assert.Equal(t, "kayu", FindMaterial("ada meja kayu"))
	assert.Equal(t, "leather", FindMaterial("leather couch"))
	assert.Equal(t, "", FindMaterial("sofa putih"))
}

func TestHasNewSearchTrigger(t *testing.T) {
	assert.True(t, HasNewSearchTrigger("cari sofa"))
	assert.True(t, HasNewSearchTrigger("ada meja kayu"))
	assert.True(t, HasNewSearchTrigger("show me tables"))
	assert.False(t, HasNewSearchTrigger("putih"))
	assert.False(t, HasNewSearchTrigger("yang murah"))
}

func TestMeaningfulWordCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"putih", 1},
		{"yang putih dong", 1},
		{"warna putih", 1},
		{"meja kayu murah", 3},
		{"yang mau ada", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MeaningfulWordCount(tt.in), tt.in)
	}
}

func TestIsAffirmative(t *testing.T) {
	yes := []string{"iya", "iyaa", "ya", "yes", "ok", "oke", "boleh", "sip", "mau", "Iya!", "ya."}
	for _, m := range yes {
		assert.True(t, IsAffirmative(m), m)
	}
	no := []string{"iya tapi yang putih", "tidak", "yes please show me", ""}
	for _, m := range no {
		assert.False(t, IsAffirmative(m), m)
	}
}

func TestIsIndonesian(t *testing.T) {
	assert.True(t, IsIndonesian("saya mau cari sofa"))
	assert.True(t, IsIndonesian("yang putih"))
	assert.True(t, IsIndonesian("meja kayu"))
	assert.False(t, IsIndonesian("show me white tables"))
	assert.False(t, IsIndonesian("hello"))
}

func TestStripLeadIn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"saya mau cari sofa", "sofa"},
		{"cari sofa putih", "sofa putih"},
		{"show me white tables", "white tables"},
		{"yang warna putih", "putih"},
		// "ada" is not a lead-in; it stays part of the message
		{"ada meja kayu", "ada meja kayu"},
		{"sofa putih", "sofa putih"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripLeadIn(tt.in), tt.in)
	}
}

func TestStripAttributeTerms(t *testing.T) {
	assert.Equal(t, "sofa", StripColors("sofa putih"))
	assert.Equal(t, "sofa putih", StripMaterials("sofa putih kayu"))
	assert.Equal(t, "meja", StripPriceDescriptors("meja murah"))
}

func TestNormalizerCanonicalIndonesian(t *testing.T) {
	n := NewNormalizer()
	assert.Equal(t, "putih", n.Color("white"))
	assert.Equal(t, "abu-abu", n.Color("gray"))
	assert.Equal(t, "abu-abu", n.Color("grey"))
	assert.Equal(t, "putih", n.Color("putih"))
	assert.Equal(t, "kayu", n.Material("wood"))
	assert.Equal(t, "kayu", n.Material("wooden"))
	assert.Equal(t, "murah", n.PriceDescriptor("cheap"))
	// unknown terms pass through
	assert.Equal(t, "magenta", n.Color("magenta"))
}

func TestNormalizerEnglishDirectionIsDeterministic(t *testing.T) {
	n := &Normalizer{Target: "en"}
	first := n.Color("abu-abu")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, n.Color("abu-abu"))
	}
	assert.Equal(t, "white", n.Color("putih"))
	assert.Equal(t, "wood", n.Material("kayu"))
}

func TestHasPrefixAndContainsPhrase(t *testing.T) {
	assert.True(t, HasPrefix("halo kak", GreetingPrefixes))
	assert.True(t, HasPrefix("halo", GreetingPrefixes))
	assert.False(t, HasPrefix("kirim halo", GreetingPrefixes))

	assert.True(t, ContainsPhrase("tolong hapus filter dong", ClearFilterKeywords))
	assert.False(t, ContainsPhrase("tolong cari sofa", ClearFilterKeywords))
}
