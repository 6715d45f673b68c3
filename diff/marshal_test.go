package diff

import (
	"encoding/json"
	"testing"
)

func TestMarshalEdit_EqualDefaultIsBareString(t *testing.T) {
	// Arrange
	e := DiffPrimitive(5, 5)

	// Act
	b, err := MarshalEdit(e)

	// Assert
	if err != nil {
		t.Fatalf("MarshalEdit error: %v", err)
	}
	if string(b) != `"Equal"` {
		t.Errorf("got %s, want \"Equal\"", b)
	}
}

func TestMarshalEdit_EqualWithFullEqual(t *testing.T) {
	// Arrange
	e := DiffPrimitive(5, 5)

	// Act
	b, err := MarshalEdit(e, WithFullEqual())

	// Assert
	if err != nil {
		t.Fatalf("MarshalEdit error: %v", err)
	}
	var out map[string]int
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["Equal"] != 5 {
		t.Errorf("got %v, want {Equal: 5}", out)
	}
}

func TestMarshalEdit_Changed(t *testing.T) {
	// Arrange
	e := DiffPrimitive("a", "b")

	// Act
	b, err := MarshalEdit(e)

	// Assert: the recursive payload is inlined, not wrapped in {"Edit": ...}.
	if err != nil {
		t.Fatalf("MarshalEdit error: %v", err)
	}
	var out Replace[string]
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Before != "a" || out.After != "b" {
		t.Errorf("got %+v, want Replace{a,b}", out)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err == nil {
		if _, ok := raw["Edit"]; ok {
			t.Errorf("got %s, must not wrap the payload in an \"Edit\" key", b)
		}
	}
}

func TestMarshalOptionEdit_AllVariants(t *testing.T) {
	a, b := "x", "y"

	cases := []struct {
		name string
		e    OptionEdit[string, Edit[string, Replace[string]]]
		want string
	}{
		{"bothNil", DiffOption[string, Replace[string]](nil, nil, DiffPrimitive[string]), `"Equal"`},
		{"insert", DiffOption(nil, &b, DiffPrimitive[string]), `{"Insert":"y"}`},
		{"delete", DiffOption(&a, nil, DiffPrimitive[string]), `{"Delete":"x"}`},
	}
	for _, c := range cases {
		got, err := MarshalOptionEdit(c.e)
		if err != nil {
			t.Fatalf("%s: MarshalOptionEdit error: %v", c.name, err)
		}
		if string(got) != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestMarshalOptionEdit_Edit(t *testing.T) {
	// Arrange
	a, b := "before", "after"
	e := DiffOption(&a, &b, DiffPrimitive[string])

	// Act
	got, err := MarshalOptionEdit(e)

	// Assert
	if err != nil {
		t.Fatalf("MarshalOptionEdit error: %v", err)
	}
	var out map[string]json.RawMessage
	if err := json.Unmarshal(got, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := out["Edit"]; !ok {
		t.Errorf("got %s, want an Edit key", got)
	}
}

func TestMarshalElement_AllVariants(t *testing.T) {
	cases := []struct {
		name string
		e    Element[string, Replace[string]]
		want string
	}{
		{"equal", equalElem[string, Replace[string]]("v"), `"Equal"`},
		{"insert", insertElem[string, Replace[string]]("v"), `{"Insert":"v"}`},
		{"delete", deleteElem[string, Replace[string]]("v"), `{"Delete":"v"}`},
	}
	for _, c := range cases {
		got, err := MarshalElement(c.e)
		if err != nil {
			t.Fatalf("%s: MarshalElement error: %v", c.name, err)
		}
		if string(got) != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
}

func TestMarshalElement_EqualWithFullEqual(t *testing.T) {
	// Arrange
	e := equalElem[string, Replace[string]]("v")

	// Act
	got, err := MarshalElement(e, WithFullEqual())

	// Assert
	if err != nil {
		t.Fatalf("MarshalElement error: %v", err)
	}
	if string(got) != `{"Equal":"v"}` {
		t.Errorf("got %s, want {\"Equal\":\"v\"}", got)
	}
}
