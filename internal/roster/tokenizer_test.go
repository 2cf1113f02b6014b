package roster

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/alexanderramin/shiftroster/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(tokens []domain.ShiftToken) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Code
	}
	return out
}

func TestTokenize_StatusKeywordsConsumeExactLength(t *testing.T) {
	keywords := []string{"off", "OFF", "Off", "AL", "al", "TR", "tr", "TP", "Tp", "MC", "mc", "TBD", "tbd"}
	tails := []string{"", "39", "12A3", "xyz", "ALTR", "!"}

	for _, kw := range keywords {
		for _, tail := range tails {
			tokens := Tokenize(kw+tail, 36)
			require.NotEmpty(t, tokens, kw+tail)
			assert.Equal(t, kw, tokens[0].Code, kw+tail)
			assert.Equal(t, domain.ShiftStatus, tokens[0].Kind, kw+tail)
		}
	}
}

func TestTokenize_CompositeBeatsBareDigits(t *testing.T) {
	for _, c := range []string{"12A3", "00B0", "99C9", "07D1"} {
		tokens := Tokenize(c, 36)
		require.Len(t, tokens, 1, c)
		assert.Equal(t, c, tokens[0].Code)
		assert.Equal(t, domain.ShiftComposite, tokens[0].Kind)
	}
}

func TestTokenize_CompositeLetterRange(t *testing.T) {
	// E is outside A-D so "12" is a bare code and "E3" is noise then nothing.
	assert.Equal(t, []string{"12"}, codes(Tokenize("12E3", 36)))
	// Lower-case letters are not composite either.
	assert.Equal(t, []string{"12"}, codes(Tokenize("12a3", 36)))
}

func TestTokenize_BareDigits(t *testing.T) {
	tokens := Tokenize("390102", 36)
	assert.Equal(t, []string{"39", "01", "02"}, codes(tokens))
	for _, tok := range tokens {
		assert.Equal(t, domain.ShiftNumeric, tok.Kind)
	}
}

func TestTokenize_OddTrailingDigitDropped(t *testing.T) {
	assert.Equal(t, []string{"39", "01"}, codes(Tokenize("39015", 36)))
}

func TestTokenize_RoundTrip36(t *testing.T) {
	blob := rosterBlob(rosterCodes)

	tokens := Tokenize(blob, 36)

	require.Len(t, tokens, 36)
	assert.Equal(t, rosterCodes, codes(tokens))
	assert.Equal(t, blob, strings.Join(codes(tokens), ""))
}

func TestTokenize_RoundTripRandomRows(t *testing.T) {
	rng := rand.New(rand.NewSource(26))
	shapes := []func() string{
		func() string {
			return []string{"off", "OFF", "AL", "TR", "TP", "MC", "TBD", "tbd"}[rng.Intn(8)]
		},
		func() string {
			return string([]byte{digit(rng), digit(rng), byte('A' + rng.Intn(4)), digit(rng)})
		},
		func() string {
			return string([]byte{digit(rng), digit(rng)})
		},
	}

	for trial := 0; trial < 200; trial++ {
		want := make([]string, 36)
		for i := range want {
			want[i] = shapes[rng.Intn(len(shapes))]()
		}

		got := codes(Tokenize(rosterBlob(want), 36))

		require.Equal(t, want, got, "trial %d", trial)
	}
}

func digit(rng *rand.Rand) byte {
	return byte('0' + rng.Intn(10))
}

func TestTokenize_SkipsOneNoiseCharacter(t *testing.T) {
	for _, noise := range []string{"#", "x", "-", "é", "Z"} {
		tokens := Tokenize("12A3"+noise+"39", 36)
		assert.Equal(t, []string{"12A3", "39"}, codes(tokens), "noise %q", noise)
	}
}

func TestTokenize_NoiseBetweenEveryCode(t *testing.T) {
	blob := strings.Join(rosterCodes, "|")
	assert.Equal(t, rosterCodes, codes(Tokenize(blob, 36)))
}

func TestTokenize_CapsAtLimit(t *testing.T) {
	blob := rosterBlob(rosterCodes) + "39MC12A3"

	tokens := Tokenize(blob, 36)

	assert.Len(t, tokens, 36)
	assert.Equal(t, rosterCodes, codes(tokens))
}

func TestTokenize_LimitZero(t *testing.T) {
	assert.Empty(t, Tokenize("39", 0))
}

func TestTokenize_EmptyAndAllNoise(t *testing.T) {
	assert.Empty(t, Tokenize("", 36))
	assert.Empty(t, Tokenize("!@#$%^&*", 36))
}

func TestTokenize_KeepsSourceCasing(t *testing.T) {
	assert.Equal(t, []string{"Off", "tBd", "al"}, codes(Tokenize("OfftBdal", 36)))
}

func TestTokenize_Kinds(t *testing.T) {
	status := func(c string) domain.ShiftToken { return domain.ShiftToken{Code: c, Kind: domain.ShiftStatus} }
	composite := func(c string) domain.ShiftToken { return domain.ShiftToken{Code: c, Kind: domain.ShiftComposite} }
	numeric := func(c string) domain.ShiftToken { return domain.ShiftToken{Code: c, Kind: domain.ShiftNumeric} }

	tests := []struct {
		name string
		blob string
		want []domain.ShiftToken
	}{
		{"empty", "", []domain.ShiftToken{}},
		{"keyword then digits", "off39", []domain.ShiftToken{status("off"), numeric("39")}},
		{"noise between codes", "MC12A3x07", []domain.ShiftToken{status("MC"), composite("12A3"), numeric("07")}},
		{"keywords back to back", "tbdAL", []domain.ShiftToken{status("tbd"), status("AL")}},
		{"trailing letter after keyword", "TBDD", []domain.ShiftToken{status("TBD")}},
		{"multibyte noise", "é39", []domain.ShiftToken{numeric("39")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.blob, 36)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.blob, diff)
			}
		})
	}
}
