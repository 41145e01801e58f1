// Package lexicon holds the static bilingual (Indonesian/English) word lists
// used for deterministic intent and attribute matching, plus the scan helpers
// over them. Pure data and pure functions; no state.
package lexicon

import (
	"regexp"
	"strings"
	"unicode"
)

var categoriesID = []string{
	"tempat tidur",
	"sofa", "kursi", "meja", "lemari", "rak", "kasur", "nakas", "bufet",
	"cermin", "bangku",
}

var categoriesEN = []string{
	"couch", "chair", "table", "desk", "wardrobe", "cupboard", "cabinet",
	"shelf", "bookshelf", "bed", "mattress", "mirror", "bench", "stool",
	"nightstand", "dresser",
}

var colorsID = []string{
	"abu-abu",
	"putih", "hitam", "merah", "biru", "hijau", "kuning", "coklat", "cokelat",
	"abu", "krem", "emas", "perak",
}

var colorsEN = []string{
	"white", "black", "red", "blue", "green", "yellow", "brown", "grey",
	"gray", "cream", "beige", "gold", "silver", "navy",
}

var materialsID = []string{
	"kayu", "jati", "mahoni", "besi", "logam", "baja", "kain", "kulit",
	"rotan", "kaca", "plastik", "marmer", "beludru",
}

var materialsEN = []string{
	"wood", "wooden", "teak", "mahogany", "iron", "metal", "steel", "fabric",
	"leather", "rattan", "glass", "plastic", "marble", "velvet",
}

var priceID = []string{
	"murah", "mahal", "terjangkau", "hemat", "ekonomis", "premium", "mewah",
}

var priceEN = []string{
	"cheap", "affordable", "budget", "expensive", "luxury", "luxurious",
}

// Categories are the product-category terms that anchor a search episode.
var Categories = concat(categoriesID, categoriesEN)

// Colors, Materials and PriceDescriptors are the attribute lexicons.
var Colors = concat(colorsID, colorsEN)
var Materials = concat(materialsID, materialsEN)
var PriceDescriptors = concat(priceID, priceEN)

// FillerWords are ignored when judging whether a message is "just an attribute".
var FillerWords = []string{
	"yang", "warna", "bahan", "saya", "aku", "mau", "ingin", "cari",
	"carikan", "dong", "deh", "kak", "nya", "ada", "tolong", "harga",
	"dengan", "untuk", "lagi",
	"the", "a", "an", "i", "in", "of", "color", "colour", "want", "one",
	"please", "me", "it", "is", "show", "find", "looking", "for",
}

// NewSearchTriggers are phrases that explicitly start a fresh search.
var NewSearchTriggers = []string{
	"mau lihat", "looking for", "i want to see", "search for",
	"cari", "carikan", "ada", "lihat", "tunjukkan", "show me", "find",
	"search",
}

// LeadInPhrases are conversational openers stripped before a message (or a
// base query) is used as search text. Ordered longest-first so compound
// phrases win over their own prefixes.
var LeadInPhrases = []string{
	"saya ingin mencari", "saya mau cari", "tolong carikan",
	"i want to see", "i'm looking for", "im looking for",
	"saya ingin", "saya mau", "aku ingin", "aku mau", "mau lihat",
	"looking for", "search for", "yang berbahan", "yang warna",
	"carikan", "tunjukkan", "show me", "find me",
	"cari", "lihat", "find", "search", "yang",
}

// GreetingPrefixes, HelpPrefixes, ResetKeywords and ClearFilterKeywords feed
// the deterministic intent fallback.
var GreetingPrefixes = []string{
	"selamat pagi", "selamat siang", "selamat sore", "selamat malam",
	"good morning", "good afternoon", "good evening",
	"halo", "hai", "hello", "hi", "hey",
}

var HelpPrefixes = []string{
	"bisa bantu", "can you help", "how do", "bagaimana cara",
	"help", "bantuan", "bantu",
}

var ResetKeywords = []string{
	"mulai ulang", "start over", "ulangi dari awal", "reset", "restart",
}

var ClearFilterKeywords = []string{
	"hapus filter", "clear filter", "reset filter", "tanpa filter",
	"remove filter",
}

// indonesianIndicators are function words that mark an utterance as Indonesian.
var indonesianIndicators = []string{
	"yang", "ada", "saya", "aku", "mau", "ingin", "cari", "carikan",
	"warna", "bahan", "harga", "tidak", "apa", "berapa",
	"dengan", "untuk", "bisa", "tolong", "halo", "iya", "kak", "dong",
	"dimana", "jam", "buka", "kirim", "bayar", "toko", "alamat",
}

var affirmativePattern = regexp.MustCompile(
	`^(iya+|iyah|ya+|yes|yup|yep|ok|oke|okay|okey|boleh|sure|sip|siap|mau|yoi)[\s!.?]*$`)

var colorCanonicalID = map[string]string{
	"white": "putih", "black": "hitam", "red": "merah", "blue": "biru",
	"green": "hijau", "yellow": "kuning", "brown": "coklat",
	"cokelat": "coklat", "grey": "abu-abu", "gray": "abu-abu",
	"abu": "abu-abu", "cream": "krem", "beige": "krem", "gold": "emas",
	"silver": "perak",
}

var materialCanonicalID = map[string]string{
	"wood": "kayu", "wooden": "kayu", "teak": "jati", "mahogany": "mahoni",
	"iron": "besi", "metal": "logam", "steel": "baja", "fabric": "kain",
	"leather": "kulit", "rattan": "rotan", "glass": "kaca",
	"plastic": "plastik", "marble": "marmer", "velvet": "beludru",
}

var priceCanonicalID = map[string]string{
	"cheap": "murah", "budget": "murah", "affordable": "terjangkau",
	"expensive": "mahal", "luxury": "mewah", "luxurious": "mewah",
}

// Reverse maps are derived from the ordered EN lists so the en-canonical
// direction is deterministic (grey/gray both map to abu-abu; abu-abu maps
// back to whichever appears first in colorsEN).
var colorCanonicalEN = reverse(colorCanonicalID, colorsEN)
var materialCanonicalEN = reverse(materialCanonicalID, materialsEN)
var priceCanonicalEN = reverse(priceCanonicalID, priceEN)

var fillerSet = toSet(FillerWords)
var indicatorSet = toSet(indonesianIndicators)

func reverse(idMap map[string]string, enTerms []string) map[string]string {
	out := make(map[string]string, len(enTerms))
	for _, en := range enTerms {
		if id, ok := idMap[en]; ok {
			if _, exists := out[id]; !exists {
				out[id] = en
			}
		}
	}
	return out
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func toSet(words []string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Normalize lowercases text and maps punctuation to spaces, keeping hyphens
// so terms like "abu-abu" survive.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// ContainsTerm reports whether the (possibly multi-word) term occurs in text
// on word boundaries. Both sides are normalized.
func ContainsTerm(text, term string) bool {
	return strings.Contains(" "+Normalize(text)+" ", " "+term+" ")
}

func findFirst(text string, terms []string) string {
	padded := " " + Normalize(text) + " "
	for _, t := range terms {
		if strings.Contains(padded, " "+t+" ") {
			return t
		}
	}
	return ""
}

// FindCategory returns the first category term found in the message, or "".
func FindCategory(message string) string { return findFirst(message, Categories) }

// FindColor returns the first color term found in the message, or "".
func FindColor(message string) string { return findFirst(message, Colors) }

// FindMaterial returns the first material term found in the message, or "".
func FindMaterial(message string) string { return findFirst(message, Materials) }

// FindPriceDescriptor returns the first price descriptor found, or "".
func FindPriceDescriptor(message string) string {
	return findFirst(message, PriceDescriptors)
}

// HasNewSearchTrigger reports whether the message contains an explicit
// new-search phrase.
func HasNewSearchTrigger(message string) bool {
	return findFirst(message, NewSearchTriggers) != ""
}

// MeaningfulWordCount counts words that are not filler words.
func MeaningfulWordCount(message string) int {
	n := 0
	for _, w := range strings.Fields(Normalize(message)) {
		if _, filler := fillerSet[w]; !filler {
			n++
		}
	}
	return n
}

// IsAffirmative reports whether the message is a short "yes"-like reply.
func IsAffirmative(message string) bool {
	return affirmativePattern.MatchString(strings.ToLower(strings.TrimSpace(message)))
}

// IsIndonesian reports whether the message looks Indonesian: any indicator
// token or any Indonesian-side lexicon term counts.
func IsIndonesian(message string) bool {
	for _, w := range strings.Fields(Normalize(message)) {
		if _, ok := indicatorSet[w]; ok {
			return true
		}
	}
	for _, list := range [][]string{categoriesID, colorsID, materialsID, priceID} {
		for _, t := range list {
			if ContainsTerm(message, t) {
				return true
			}
		}
	}
	return false
}

// HasPrefix reports whether the normalized message starts with any of the
// given phrases.
func HasPrefix(message string, phrases []string) bool {
	msg := Normalize(message)
	for _, p := range phrases {
		if msg == p || strings.HasPrefix(msg, p+" ") {
			return true
		}
	}
	return false
}

// ContainsPhrase reports whether any of the phrases occurs in the message.
func ContainsPhrase(message string, phrases []string) bool {
	return findFirst(message, phrases) != ""
}

// StripLeadIn removes leading conversational openers ("saya mau", "show me",
// "yang warna", ...) repeatedly until none match.
func StripLeadIn(message string) string {
	msg := Normalize(message)
	for {
		stripped := false
		for _, p := range LeadInPhrases {
			if strings.HasPrefix(msg, p+" ") {
				msg = strings.TrimSpace(strings.TrimPrefix(msg, p+" "))
				stripped = true
				break
			}
		}
		if !stripped {
			return msg
		}
	}
}

func stripTerms(text string, terms []string) string {
	padded := " " + Normalize(text) + " "
	for _, t := range terms {
		padded = strings.ReplaceAll(padded, " "+t+" ", " ")
	}
	return strings.Join(strings.Fields(padded), " ")
}

// StripColors removes every known color term from the text.
func StripColors(text string) string { return stripTerms(text, Colors) }

// StripMaterials removes every known material term from the text.
func StripMaterials(text string) string { return stripTerms(text, Materials) }

// StripPriceDescriptors removes every known price descriptor from the text.
func StripPriceDescriptors(text string) string {
	return stripTerms(text, PriceDescriptors)
}

// Normalizer maps attribute synonyms onto one canonical language so filters
// stay comparable across mixed-language turns.
type Normalizer struct {
	// Target is the canonical language, "id" or "en". Only "id" maps are
	// maintained today; "en" inverts them.
	Target string
}

// NewNormalizer returns a normalizer with canonical Indonesian forms.
func NewNormalizer() *Normalizer { return &Normalizer{Target: "id"} }

func (n *Normalizer) canonical(term string, idMap, enMap map[string]string) string {
	term = Normalize(term)
	if n.Target == "en" {
		if id, ok := idMap[term]; ok {
			term = id
		}
		if en, ok := enMap[term]; ok {
			return en
		}
		return term
	}
	if c, ok := idMap[term]; ok {
		return c
	}
	return term
}

// Color returns the canonical form of a color term.
func (n *Normalizer) Color(term string) string {
	return n.canonical(term, colorCanonicalID, colorCanonicalEN)
}

// Material returns the canonical form of a material term.
func (n *Normalizer) Material(term string) string {
	return n.canonical(term, materialCanonicalID, materialCanonicalEN)
}

// PriceDescriptor returns the canonical form of a price descriptor.
func (n *Normalizer) PriceDescriptor(term string) string {
	return n.canonical(term, priceCanonicalID, priceCanonicalEN)
}
