package color

import (
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolveTest struct {
	in  string
	out Color
	err error
}

func hexColor(r, g, b uint8) Color {
	rgb := RGB{r, g, b}
	return Color{RGB: rgb, Hex: rgb.Hex(), Name: rgb.Hex(), Source: FromHex}
}

func TestResolve(t *testing.T) {
	resolver := NewResolver(CSS)

	var tests = []resolveTest{
		{in: "F00", out: hexColor(255, 0, 0)},
		{in: "#f00", out: hexColor(255, 0, 0)},
		{in: "#FF5733", out: hexColor(0xFF, 0x57, 0x33)},
		{in: "ff5733", out: hexColor(0xFF, 0x57, 0x33)},
		{in: "  #0a0B0c\t", out: hexColor(0x0A, 0x0B, 0x0C)},
		{in: "abc", out: hexColor(0xAA, 0xBB, 0xCC)},
		{
			in:  "coral",
			out: Color{RGB: RGB{255, 127, 80}, Hex: "FF7F50", Name: "coral", Source: FromName},
		},
		{
			in:  " LightCoral ",
			out: Color{RGB: RGB{240, 128, 128}, Hex: "F08080", Name: "lightcoral", Source: FromName},
		},
		{in: "", err: ErrEmptyInput},
		{in: "   ", err: ErrEmptyInput},
		{in: "#", err: ErrInvalidHex},
		{in: "#12", err: ErrInvalidHex},
		{in: "12", err: ErrInvalidHex},
		{in: "#1234567", err: ErrInvalidHex},
		{in: "#12345g", err: ErrInvalidHex},
		{in: "#coral", err: ErrInvalidHex},
		{in: "zzz", err: ErrUnknownName},
		{in: "dark red", err: ErrUnknownName},
	}

	for _, test := range tests {
		c, err := resolver.Resolve(test.in)
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, "input %q", test.in)
			assert.True(t, IsValidation(err), "input %q", test.in)
			continue
		}

		require.NoError(t, err, "input %q", test.in)
		assertColor(t, test.in, c, test.out)
	}
}

func TestResolveShorthand(t *testing.T) {
	resolver := NewResolver(CSS)
	const digits = "0123456789abcdefABCDEF"

	for i := 0; i < len(digits); i++ {
		short := string([]byte{digits[i], digits[(i+5)%len(digits)], digits[(i+11)%len(digits)]})
		long := string([]byte{
			short[0], short[0],
			short[1], short[1],
			short[2], short[2],
		})

		bare, err := resolver.Resolve(short)
		require.NoError(t, err)

		hashed, err := resolver.Resolve("#" + short)
		require.NoError(t, err)

		expanded, err := resolver.Resolve(long)
		require.NoError(t, err)

		assertColor(t, short, hashed, bare)
		assertColor(t, short, expanded, bare)
		assert.Equal(t, strings.ToUpper(long), bare.Hex)
	}
}

func TestResolveNamesCaseAndSpace(t *testing.T) {
	resolver := NewResolver(CSS)

	for _, name := range CSS.Names() {
		lower, err := resolver.Resolve(name)
		require.NoError(t, err, "name %q", name)

		upper, err := resolver.Resolve(strings.ToUpper(name))
		require.NoError(t, err, "name %q", name)

		padded, err := resolver.Resolve(" " + name + " ")
		require.NoError(t, err, "name %q", name)

		// Names made only of hex digits would resolve as hex instead.
		assert.Equal(t, FromName, lower.Source, "name %q", name)
		assertColor(t, name, upper, lower)
		assertColor(t, name, padded, lower)
		assert.Equal(t, lower.RGB.Hex(), lower.Hex)
	}
}

func TestResolveDescriptions(t *testing.T) {
	resolver := NewResolver(CSS, WithDescriptions(true))

	c, err := resolver.Resolve("Dark  RED")
	require.NoError(t, err)
	assertColor(t, "dark red", c, Color{
		RGB:    RGB{127, 0, 0},
		Hex:    "7F0000",
		Name:   "dark red",
		Source: FromDescription,
	})

	// Named colors win over descriptions.
	c, err = resolver.Resolve("red")
	require.NoError(t, err)
	assert.Equal(t, FromName, c.Source)

	_, err = resolver.Resolve("purplish red")
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestCSSTable(t *testing.T) {
	assert.GreaterOrEqual(t, CSS.Len(), 140)
	assert.True(t, CSS.Has("rebeccapurple") || CSS.Has("coral"))
	assert.False(t, CSS.Has("Coral"))
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"coral"}, CSS.Suggest("corl", 1))
	assert.Contains(t, CSS.Suggest("purpel", 5), "purple")
	assert.Len(t, CSS.Suggest("", 10), 10)
	assert.Empty(t, CSS.Suggest("qqqqqqqqqq", 5))
}

func assertColor(t *testing.T, in string, got, expect Color) {
	t.Helper()

	if diff := deep.Equal(got, expect); diff != nil {
		t.Logf("Got %d error(s) for %q", len(diff), in)

		for _, d := range diff {
			t.Error("(got != expected) " + d)
		}
	}
}
