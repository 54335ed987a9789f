package rejson

import (
	"testing"
)

func argsAsStrings(args [][]byte) []string {
	strings := make([]string, len(args))
	for index, arg := range args {
		strings[index] = string(arg)
	}
	return strings
}

func Test_buildDelArgs(t *testing.T) {
	args, err := buildDelArgs("doc")
	expectNoError(t, err)
	expectDeepEqual(t, []string{"doc", "."}, argsAsStrings(args))

	args, err = buildDelArgs("doc", NewPath(".a.b"))
	expectNoError(t, err)
	expectDeepEqual(t, []string{"doc", ".a.b"}, argsAsStrings(args))
}

func Test_buildGetArgs_NoPathsEmitsKeyOnly(t *testing.T) {
	args := buildGetArgs("doc")

	expectDeepEqual(t, []string{"doc"}, argsAsStrings(args))
}

func Test_buildGetArgs_ForwardsEveryPath(t *testing.T) {
	args := buildGetArgs("doc", NewPath(".a"), NewPath(".b[0]"))

	expectDeepEqual(t, []string{"doc", ".a", ".b[0]"}, argsAsStrings(args))
}

func Test_buildSetArgs_DefaultModifierOmitsToken(t *testing.T) {
	args, err := buildSetArgs("doc", map[string]any{"a": 1}, Default)

	expectNoError(t, err)
	expectDeepEqual(t, []string{"doc", ".", `{"a":1}`}, argsAsStrings(args))
}

func Test_buildSetArgs_AppendsModifierToken(t *testing.T) {
	args, err := buildSetArgs("doc", []int{1, 2}, MustExist, NewPath(".a"))

	expectNoError(t, err)
	expectDeepEqual(t, []string{"doc", ".a", "[1,2]", "XX"}, argsAsStrings(args))
}

func Test_buildTypeArgs(t *testing.T) {
	args, err := buildTypeArgs("doc", NewPath(".a"))

	expectNoError(t, err)
	expectDeepEqual(t, []string{"doc", ".a"}, argsAsStrings(args))
}

func Test_buildExpireArgs(t *testing.T) {
	expectDeepEqual(t, []string{"doc", "30"}, argsAsStrings(buildExpireArgs("doc", 30)))
}

func Test_DocumentRoundTrip(t *testing.T) {
	documents := []struct {
		name     string
		document any
		decoded  any
	}{
		{"null", nil, nil},
		{"boolean", true, true},
		{"integer", 42, float64(42)},
		{"float", 3.5, 3.5},
		{"string", "hello", "hello"},
		{"sequence", []any{float64(1), "two", nil}, []any{float64(1), "two", nil}},
		{"mapping", map[string]any{"a": float64(1)}, map[string]any{"a": float64(1)}},
		{
			"nested",
			map[string]any{"list": []any{map[string]any{"ok": true}}, "n": 1.5},
			map[string]any{"list": []any{map[string]any{"ok": true}}, "n": 1.5},
		},
	}

	for _, testCase := range documents {
		t.Run(testCase.name, func(t *testing.T) {
			args, err := buildSetArgs("doc", testCase.document, Default)
			expectNoError(t, err)

			decoded, err := decodeDocument(string(args[2]))
			expectNoError(t, err)
			expectDeepEqual(t, testCase.decoded, decoded)
		})
	}
}
