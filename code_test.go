package codingtree

import (
	"testing"
)

func TestParseCode(t *testing.T) {
	type testRow struct {
		input  string
		size   byte
		bits   uint64
		output string
		fail   bool
	}

	testData := [...]testRow{
		{input: "", size: 0, bits: 0x00, output: `""`},
		{input: "0", size: 1, bits: 0x00, output: `"0"`},
		{input: "1", size: 1, bits: 0x01, output: `"1"`},
		{input: "0101", size: 4, bits: 0x05, output: `"0101"`},
		{input: "0011", size: 4, bits: 0x03, output: `"0011"`},
		{input: "1100", size: 4, bits: 0x0c, output: `"1100"`},
		{input: "012", fail: true},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if row.fail {
				if err == nil {
					t.Errorf("expected an error, got %v", hc)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hc != MakeCode(row.size, row.bits) {
				t.Errorf("expected {%d, %#x}, got {%d, %#x}", row.size, row.bits, hc.Size, hc.Bits)
			}
			if actual := hc.String(); actual != row.output {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.output, actual)
			}
			if actual := hc.Digits(); actual != row.input {
				t.Errorf("wrong digits:\n\texpect: %s\n\tactual: %s", row.input, actual)
			}
		})
	}
}

func TestCode_Bit(t *testing.T) {
	hc := MakeCode(4, 0x0c)
	expect := []uint{1, 1, 0, 0}
	for i, bit := range expect {
		if actual := hc.Bit(byte(i)); actual != bit {
			t.Errorf("bit %d: expected %d, got %d", i, bit, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "1011", prefix: "", expect: true},
		{code: "1011", prefix: "1", expect: true},
		{code: "1011", prefix: "10", expect: true},
		{code: "1011", prefix: "1011", expect: true},
		{code: "1011", prefix: "11", expect: false},
		{code: "1011", prefix: "10110", expect: false},
		{code: "0", prefix: "1", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestMakeCode_Masks(t *testing.T) {
	hc := MakeCode(3, 0xff)
	if hc.Bits != 0x07 {
		t.Errorf("expected bits to be masked to 0x07, got %#x", hc.Bits)
	}
}
