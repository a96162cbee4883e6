package huffman

import (
	"errors"
	"strings"
	"testing"
)

func makeTestEncoder() Encoder {
	c, err := NewCodec(SymbolsOf("abracadabra"))
	if err != nil {
		panic(err)
	}
	var e Encoder
	e.Init(c.Codes())
	return e
}

func TestEncoder(t *testing.T) {
	e := makeTestEncoder()

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tEncode('a') = \"0\"\n",
		"\tEncode('b') = \"110\"\n",
		"\tEncode('r') = \"111\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder()

	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "", expect: ""},
		{input: "a", expect: "0"},
		{input: "abracadabra", expect: "01101110100010101101110"},
		{input: "dcba", expect: "1011001100"},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			msg, err := e.Encode(SymbolsOf(row.input))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if actual := msg.Digits(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestEncoder_EncodeUnmapped(t *testing.T) {
	e := makeTestEncoder()

	msg, err := e.Encode(SymbolsOf("abz"))
	if msg != nil {
		t.Errorf("expected no partial output, got %s", msg)
	}
	var unmapped *UnmappedSymbolError
	if !errors.As(err, &unmapped) {
		t.Fatalf("expected *UnmappedSymbolError, got %v", err)
	}
	if unmapped.Symbol != 'z' || unmapped.Offset != 2 {
		t.Errorf("expected symbol 'z' at offset 2, got %v at offset %d", unmapped.Symbol, unmapped.Offset)
	}

	_, err = e.EncodeSymbol('z')
	if !errors.As(err, &unmapped) {
		t.Fatalf("expected *UnmappedSymbolError, got %v", err)
	}
	if unmapped.Offset != -1 {
		t.Errorf("expected offset -1, got %d", unmapped.Offset)
	}
	expectMessage := "symbol 'z' is not present in the code table"
	if actualMessage := err.Error(); expectMessage != actualMessage {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expectMessage, actualMessage)
	}
}

func TestEncoder_EncodeSymbol(t *testing.T) {
	e := makeTestEncoder()

	code, err := e.EncodeSymbol('r')
	if err != nil {
		t.Fatalf("EncodeSymbol failed: %v", err)
	}
	if expect, actual := "\"111\"", code.String(); expect != actual {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	// The returned code must not alias the table.
	code[0] = Zero
	again, _ := e.EncodeSymbol('r')
	if again.Digits() != "111" {
		t.Errorf("code table was mutated through returned code: %s", again)
	}
}

func TestEncoder_BeforeInit(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when encoding with an uninitialized Encoder")
		}
	}()
	var e Encoder
	_, _ = e.Encode(SymbolsOf("a"))
}
