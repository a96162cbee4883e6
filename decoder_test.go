package huffman

import (
	"errors"
	"strings"
	"testing"
)

func makeTestDecoder() Decoder {
	ft, err := CountFrequencies(SymbolsOf("abracadabra"))
	if err != nil {
		panic(err)
	}
	tree, err := BuildTree(ft)
	if err != nil {
		panic(err)
	}
	var d Decoder
	d.Init(tree)
	return d
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: ""},
		{bits: "0", expect: "a"},
		{bits: "111", expect: "r"},
		{bits: "01101110100010101101110", expect: "abracadabra"},
		{bits: "1011001100", expect: "dcba"},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			msg, err := ParseBits(row.bits)
			if err != nil {
				t.Fatalf("ParseBits failed: %v", err)
			}
			out, err := d.Decode(msg)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if actual := SymbolsString(out); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestDecoder_Malformed(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		name   string
		bits   Bits
		offset int
	}

	testData := [...]testRow{
		{name: "truncated", bits: Bits{Zero, One}, offset: 2},
		{name: "truncated-deep", bits: Bits{One, One, One, One, Zero}, offset: 5},
		{name: "invalid-bit", bits: Bits{Zero, Bit(2)}, offset: 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			out, err := d.Decode(row.bits)
			if out != nil {
				t.Errorf("expected no partial output, got %q", SymbolsString(out))
			}
			var malformed *MalformedCodeError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedCodeError, got %v", err)
			}
			if malformed.Offset != row.offset {
				t.Errorf("expected offset %d, got %d", row.offset, malformed.Offset)
			}
		})
	}
}

func TestDecoder_SingleSymbol(t *testing.T) {
	ft, err := CountFrequencies(SymbolsOf("aaaa"))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	tree, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	var d Decoder
	d.Init(tree)

	out, err := d.Decode(nil)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect, actual := "aaaa", SymbolsString(out); expect != actual {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}

	_, err = d.Decode(Bits{Zero})
	var malformed *MalformedCodeError
	if !errors.As(err, &malformed) {
		t.Errorf("expected *MalformedCodeError for bits on a single-symbol tree, got %v", err)
	}
}

func TestDecoder_Dump(t *testing.T) {
	d := makeTestDecoder()

	expectDump := strings.Join([]string{
		"Decoder{\n",
		"\tNumSymbols() = 5\n",
		"\tHeight() = 3\n",
		"\tDecode(\"0\") = 'a'\n",
		"\tDecode(\"100\") = 'c'\n",
		"\tDecode(\"101\") = 'd'\n",
		"\tDecode(\"110\") = 'b'\n",
		"\tDecode(\"111\") = 'r'\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = d.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDecoder_BeforeInit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when decoding with an uninitialized Decoder")
		}
	}()
	var d Decoder
	_, _ = d.Decode(nil)
}
