package encoder

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	qrcodegen "github.com/nikhil4902/qrcodegen"
	"github.com/nikhil4902/qrcodegen/qrcode/decoder"
)

func mustVersion(t *testing.T, number int) *decoder.Version {
	t.Helper()
	v, err := decoder.VersionForNumber(number)
	if err != nil {
		t.Fatalf("VersionForNumber(%d): %v", number, err)
	}
	return v
}

func TestChooseMode(t *testing.T) {
	cases := []struct {
		content string
		want    decoder.Mode
	}{
		{"", decoder.ModeNumeric},
		{"01234567", decoder.ModeNumeric},
		{"HELLO WORLD", decoder.ModeAlphanumeric},
		{"A1 $%*+-./:", decoder.ModeAlphanumeric},
		{"hello", decoder.ModeByte},
		{"café", decoder.ModeByte},
		{"点茗", decoder.ModeKanji},
		{"日a", decoder.ModeECI},
		{"€", decoder.ModeECI},
	}
	for _, c := range cases {
		if got := ChooseMode(c.content); got != c.want {
			t.Errorf("ChooseMode(%q) = %s, want %s", c.content, got, c.want)
		}
	}
}

func TestAlphanumericCode(t *testing.T) {
	for i, c := range decoder.AlphanumericChars {
		if got := AlphanumericCode(c); got != i {
			t.Errorf("AlphanumericCode(%q) = %d, want %d", c, got, i)
		}
	}
	for _, c := range "a#é\x00" {
		if got := AlphanumericCode(c); got != -1 {
			t.Errorf("AlphanumericCode(%q) = %d, want -1", c, got)
		}
	}
}

func TestChooseVersion(t *testing.T) {
	cases := []struct {
		name        string
		mode        decoder.Mode
		length      int
		level       decoder.ErrorCorrectionLevel
		auto        bool
		forced      int
		wantVersion int
		wantLevel   decoder.ErrorCorrectionLevel
	}{
		{"auto prefers strong level", decoder.ModeAlphanumeric, 11, 0, true, 0, 1, decoder.ECLevelQ},
		{"auto exact H capacity", decoder.ModeNumeric, 17, 0, true, 0, 1, decoder.ECLevelH},
		{"auto one past H", decoder.ModeNumeric, 18, 0, true, 0, 1, decoder.ECLevelQ},
		{"auto picks lowest version", decoder.ModeNumeric, 42, 0, true, 0, 2, decoder.ECLevelQ},
		{"fixed level", decoder.ModeAlphanumeric, 11, decoder.ECLevelM, false, 0, 1, decoder.ECLevelM},
		{"fixed level grows", decoder.ModeNumeric, 42, decoder.ECLevelL, false, 0, 2, decoder.ECLevelL},
		{"fixed H grows", decoder.ModeByte, 15, decoder.ECLevelH, false, 0, 3, decoder.ECLevelH},
		{"forced version auto level", decoder.ModeByte, 20, 0, true, 5, 5, decoder.ECLevelH},
		{"forced version fixed level", decoder.ModeByte, 20, decoder.ECLevelL, false, 5, 5, decoder.ECLevelL},
		{"largest", decoder.ModeNumeric, 7089, decoder.ECLevelL, false, 0, 40, decoder.ECLevelL},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, level, err := chooseVersion(c.mode, c.length, c.level, c.auto, c.forced)
			if err != nil {
				t.Fatalf("chooseVersion: %v", err)
			}
			if v.Number != c.wantVersion || level != c.wantLevel {
				t.Errorf("got %d-%s, want %d-%s", v.Number, level, c.wantVersion, c.wantLevel)
			}
		})
	}
}

func TestChooseVersionTooLarge(t *testing.T) {
	cases := []struct {
		name   string
		mode   decoder.Mode
		length int
		level  decoder.ErrorCorrectionLevel
		auto   bool
		forced int
	}{
		{"numeric", decoder.ModeNumeric, 7090, decoder.ECLevelL, false, 0},
		{"numeric auto", decoder.ModeNumeric, 7090, 0, true, 0},
		{"byte", decoder.ModeByte, 2954, decoder.ECLevelL, false, 0},
		{"alphanumeric H", decoder.ModeAlphanumeric, 1853, decoder.ECLevelH, false, 0},
		{"forced version", decoder.ModeAlphanumeric, 11, decoder.ECLevelH, false, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := chooseVersion(c.mode, c.length, c.level, c.auto, c.forced)
			if !errors.Is(err, qrcodegen.ErrDataTooLarge) {
				t.Errorf("err = %v, want ErrDataTooLarge", err)
			}
		})
	}
}

func TestEncodeBitStream(t *testing.T) {
	cases := []struct {
		name    string
		content string
		mode    decoder.Mode
		version int
		level   decoder.ErrorCorrectionLevel
		want    []byte
	}{
		{
			name:    "numeric 1-M",
			content: "01234567",
			mode:    decoder.ModeNumeric,
			version: 1,
			level:   decoder.ECLevelM,
			want: []byte{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80,
				0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11},
		},
		{
			name:    "alphanumeric 1-Q",
			content: "HELLO WORLD",
			mode:    decoder.ModeAlphanumeric,
			version: 1,
			level:   decoder.ECLevelQ,
			want:    []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236},
		},
		{
			name:    "alphanumeric 1-M",
			content: "HELLO WORLD",
			mode:    decoder.ModeAlphanumeric,
			version: 1,
			level:   decoder.ECLevelM,
			want:    []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17},
		},
		{
			name:    "byte 1-H",
			content: "é",
			mode:    decoder.ModeByte,
			version: 1,
			level:   decoder.ECLevelH,
			want:    []byte{0x40, 0x1E, 0x90, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := EncodeBitStream(c.content, c.mode, mustVersion(t, c.version), c.level)
			if err != nil {
				t.Fatalf("EncodeBitStream: %v", err)
			}
			if !bytes.Equal(got, c.want) {
				t.Errorf("got % x, want % x", got, c.want)
			}
		})
	}
}

func TestEncodeBitStreamFillsCapacity(t *testing.T) {
	// 41 digits fill 1-L exactly, leaving no room for the full terminator.
	v := mustVersion(t, 1)
	got, err := EncodeBitStream(strings.Repeat("9", 41), decoder.ModeNumeric, v, decoder.ECLevelL)
	if err != nil {
		t.Fatalf("EncodeBitStream: %v", err)
	}
	if len(got) != v.DataCodewords(decoder.ECLevelL) {
		t.Errorf("got %d bytes, want %d", len(got), v.DataCodewords(decoder.ECLevelL))
	}
	_, err = EncodeBitStream(strings.Repeat("9", 42), decoder.ModeNumeric, v, decoder.ECLevelL)
	if !errors.Is(err, qrcodegen.ErrDataTooLarge) {
		t.Errorf("err = %v, want ErrDataTooLarge", err)
	}
}

func TestEncodeBitStreamErrors(t *testing.T) {
	v := mustVersion(t, 1)
	cases := []struct {
		name    string
		content string
		mode    decoder.Mode
		want    error
	}{
		{"letter in numeric", "12A", decoder.ModeNumeric, qrcodegen.ErrCharacterOutOfRange},
		{"lowercase in alphanumeric", "Hello", decoder.ModeAlphanumeric, qrcodegen.ErrCharacterOutOfRange},
		{"euro in byte", "€", decoder.ModeByte, qrcodegen.ErrCharacterOutOfRange},
		{"kanji", "点", decoder.ModeKanji, qrcodegen.ErrModeNotImplemented},
		{"eci", "€", decoder.ModeECI, qrcodegen.ErrModeNotImplemented},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := EncodeBitStream(c.content, c.mode, v, decoder.ECLevelL)
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}
}

func TestInterleaveSingleBlock(t *testing.T) {
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236, 17, 236, 17}
	got, err := InterleaveWithECBytes(data, mustVersion(t, 1), decoder.ECLevelM)
	if err != nil {
		t.Fatalf("InterleaveWithECBytes: %v", err)
	}
	want := append(append([]byte{}, data...), 196, 35, 39, 119, 235, 215, 231, 226, 93, 23)
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterleaveMultiBlock(t *testing.T) {
	// 5-Q: two blocks of 15 and two of 16 data codewords, 18 EC each.
	v := mustVersion(t, 5)
	data := make([]byte, v.DataCodewords(decoder.ECLevelQ))
	for i := range data {
		data[i] = byte(i)
	}
	got, err := InterleaveWithECBytes(data, v, decoder.ECLevelQ)
	if err != nil {
		t.Fatalf("InterleaveWithECBytes: %v", err)
	}
	if len(got) != v.TotalCodewords {
		t.Fatalf("got %d codewords, want %d", len(got), v.TotalCodewords)
	}
	wantPrefix := []byte{0, 15, 30, 46, 1, 16, 31, 47}
	if !bytes.Equal(got[:8], wantPrefix) {
		t.Errorf("prefix = %v, want %v", got[:8], wantPrefix)
	}
	// The last data column only has the two longer blocks.
	if got[60] != 45 || got[61] != 61 {
		t.Errorf("last data codewords = %d, %d, want 45, 61", got[60], got[61])
	}

	blocks, err := decoder.SplitDataBlocks(got, v, decoder.ECLevelQ)
	if err != nil {
		t.Fatalf("SplitDataBlocks: %v", err)
	}
	var rejoined []byte
	for _, b := range blocks {
		rejoined = append(rejoined, b.Codewords[:b.NumDataCodewords]...)
		ec, err := rsEncoder.ErrorCorrectionCodewords(b.Codewords[:b.NumDataCodewords], len(b.Codewords))
		if err != nil {
			t.Fatalf("ErrorCorrectionCodewords: %v", err)
		}
		if !bytes.Equal(ec, b.Codewords[b.NumDataCodewords:]) {
			t.Errorf("block EC codewords do not match")
		}
	}
	if !bytes.Equal(rejoined, data) {
		t.Errorf("split data = %v, want %v", rejoined, data)
	}
}

func TestInterleaveWrongLength(t *testing.T) {
	_, err := InterleaveWithECBytes([]byte{1, 2, 3}, mustVersion(t, 1), decoder.ECLevelL)
	if !errors.Is(err, qrcodegen.ErrConfiguration) {
		t.Errorf("err = %v, want ErrConfiguration", err)
	}
}
