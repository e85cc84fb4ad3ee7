package numeric_test

import (
	"bytes"
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/numeric"
	"github.com/calebcase/oops"
)

func TestBytesToBig(t *testing.T) {
	require.Equal(t, 0, big.NewInt(0).Cmp(numeric.BytesToBig(nil)))
	require.Equal(t, 0, big.NewInt(0).Cmp(numeric.BytesToBig([]byte{0, 0})))
	require.Equal(t, 0, big.NewInt(255).Cmp(numeric.BytesToBig([]byte{0xff})))

	// The top bit set is still a magnitude, never a sign.
	require.Equal(t, 0,
		big.NewInt(0x8000).Cmp(numeric.BytesToBig([]byte{0x80, 0x00})))
}

func TestToBytesPadded(t *testing.T) {
	type TC struct {
		Input  *big.Int
		Length int
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  big.NewInt(0),
			Length: 4,
			Output: []byte{0, 0, 0, 0},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  big.NewInt(255),
			Length: 2,
			Output: []byte{0x00, 0xff},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  big.NewInt(255),
			Length: 1,
			Output: []byte{0xff},
			Mark:   oops.New("unexpected"),
		},
		{
			// A value whose top bit is set must not grow a sign
			// byte.
			Input:  big.NewInt(0x80),
			Length: 1,
			Output: []byte{0x80},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  big.NewInt(0x0102),
			Length: 4,
			Output: []byte{0x00, 0x00, 0x01, 0x02},
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Input.String(), func(t *testing.T) {
			output, err := numeric.ToBytesPadded(tc.Input, tc.Length)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Length, len(output), tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)
		})
	}

	t.Run("too large", func(t *testing.T) {
		_, err := numeric.ToBytesPadded(big.NewInt(0x0100), 1)
		require.Error(t, err)
		require.True(t, numeric.EncodingError.Has(err))
	})

	t.Run("negative", func(t *testing.T) {
		_, err := numeric.ToBytesPadded(big.NewInt(-1), 4)
		require.Error(t, err)
		require.True(t, numeric.EncodingError.Has(err))
	})
}

func TestFromHex(t *testing.T) {
	type TC struct {
		Input  string
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  "",
			Output: []byte{},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0x",
			Output: []byte{},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0x0102",
			Output: []byte{0x01, 0x02},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0102",
			Output: []byte{0x01, 0x02},
			Mark:   oops.New("unexpected"),
		},
		{
			// Odd digit counts read as if a leading 0 digit were
			// present.
			Input:  "f",
			Output: []byte{0x0f},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "fff",
			Output: []byte{0x0f, 0xff},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  "0xABCD",
			Output: []byte{0xab, 0xcd},
			Mark:   oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Input, func(t *testing.T) {
			output, err := numeric.FromHex(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, output, tc.Mark)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{"0xzz", "g", "0x012g"} {
			_, err := numeric.FromHex(input)
			require.Error(t, err, "input %q", input)
			require.True(t, numeric.DecodingError.Has(err))
		}
	})
}

func TestBytesToHex(t *testing.T) {
	require.Equal(t, "", numeric.BytesToHex(nil))
	require.Equal(t, "0x", numeric.BytesToHexWithPrefix(nil))
	require.Equal(t, "00ff", numeric.BytesToHex([]byte{0x00, 0xff}))
	require.Equal(t, "0x0102", numeric.BytesToHexWithPrefix([]byte{0x01, 0x02}))
}

func TestBytesRoundtrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0))

	for i := 0; i < 256; i++ {
		data := make([]byte, i)
		_, err := rng.Read(data)
		require.NoError(t, err)

		decoded, err := numeric.FromHex(numeric.BytesToHex(data))
		require.NoError(t, err)

		if !bytes.Equal(data, decoded) {
			t.Logf("Data: %s\n", spew.Sdump(data))
			t.Logf("Decoded: %s\n", spew.Sdump(decoded))
		}
		require.Equal(t, data, decoded, "length %d", i)
	}
}
