package flexcodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/rony4d/flexcodec"
	"github.com/rony4d/flexcodec/stream"
)

// These cross-check flexcodec's hand-rolled UTF-16 char codec against an
// independent decoder from golang.org/x/text, rather than only against
// itself. The wire-level framing (spec-mandated surrogate pair layout,
// endianness, no BOM) stays hand-written; x/text only verifies the output
// is genuine UTF-16 a third party would agree on.
func TestWriteChar_Utf16MatchesXTextOracle(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		end  flexcodec.Endianness
	}{
		{"bmp-ascii", 'A', flexcodec.BigEndian},
		{"bmp-ascii-le", 'A', flexcodec.LittleEndian},
		{"bmp-non-ascii", 'é', flexcodec.BigEndian},
		{"surrogate-pair", '\U0001F600', flexcodec.BigEndian},
		{"surrogate-pair-le", '\U0001F600', flexcodec.LittleEndian},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := flexcodec.DefaultBinSettings()
			s.StringRepr.StrEncoding = flexcodec.Utf16
			s.StringRepr.Endianness = tc.end
			ctx := flexcodec.WithSettings(s)
			w := stream.NewSliceWriter(nil)
			enc := flexcodec.NewEncoderWriter(w, ctx)

			require.NoError(t, enc.WriteChar(tc.r))

			oracleEnd := unicode.BigEndian
			if tc.end == flexcodec.LittleEndian {
				oracleEnd = unicode.LittleEndian
			}
			decoded, err := unicode.UTF16(oracleEnd, unicode.IgnoreBOM).NewDecoder().Bytes(w.Bytes())
			require.NoError(t, err)
			require.Equal(t, string(tc.r), string(decoded))
		})
	}
}
